package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ApplyEnv overrides cfg fields from WORDSIM_* environment variables.
// A .env file in the working directory is loaded first if present, so
// deployments can configure the service without a config file. Invalid
// values are ignored.
func ApplyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("WORDSIM_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
	if v := os.Getenv("WORDSIM_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("WORDSIM_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("WORDSIM_PRETTY_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Server.PrettyJSON = b
		}
	}
	if v := os.Getenv("WORDSIM_VECTORS_PATH"); v != "" {
		cfg.Vectors.Path = v
	}
	if v := os.Getenv("WORDSIM_VECTORS_URL"); v != "" {
		cfg.Vectors.DownloadURL = v
	}
	if v := os.Getenv("WORDSIM_CACHE_PATH"); v != "" {
		cfg.Vectors.CachePath = v
	}
}
