package config

// Default GloVe 6B archive served by the Stanford NLP group.
const (
	defaultDownloadURL   = "https://nlp.stanford.edu/data/glove.6B.zip"
	defaultArchiveMember = "glove.6B.300d.txt"
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4001
	}
	if cfg.Vectors.Path == "" {
		cfg.Vectors.Path = "word-vector-sim/data/glove.6B.300d.txt"
	}
	if cfg.Vectors.DownloadURL == "" {
		cfg.Vectors.DownloadURL = defaultDownloadURL
	}
	if cfg.Vectors.ArchiveMember == "" {
		cfg.Vectors.ArchiveMember = defaultArchiveMember
	}
	if cfg.Vectors.CachePath == "" {
		cfg.Vectors.CachePath = "word-vector-sim/data/vectors.db"
	}
	if cfg.Search.DefaultTopN == 0 {
		cfg.Search.DefaultTopN = 5
	}
	if cfg.Search.MaxTopN == 0 {
		cfg.Search.MaxTopN = 100
	}
	if cfg.Search.MaxMissingReported == 0 {
		cfg.Search.MaxMissingReported = 10
	}
	if cfg.Search.SuggestMaxDistance == 0 {
		cfg.Search.SuggestMaxDistance = 2
	}
	if cfg.Search.MaxSuggestions == 0 {
		cfg.Search.MaxSuggestions = 5
	}
}
