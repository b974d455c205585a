// Package main is the wordsim CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/word-vector-sim/internal/cli"
	"github.com/tsawler/word-vector-sim/internal/config"
	"github.com/tsawler/word-vector-sim/internal/glove"
	"github.com/tsawler/word-vector-sim/internal/models"
	"github.com/tsawler/word-vector-sim/internal/server"
	"github.com/tsawler/word-vector-sim/internal/storage"
	"github.com/tsawler/word-vector-sim/internal/suggest"
	"github.com/tsawler/word-vector-sim/internal/vector"
	"github.com/tsawler/word-vector-sim/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/wordsim/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); when neither
// exists, built-in defaults plus environment overrides are used.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			return config.Default(), "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "query":
		runQuery()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("wordsim version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// buildTable produces the vector table: bootstrap the vectors file if needed,
// then load from the SQLite cache when possible, falling back to the text
// parse (and refreshing the cache). Any returned error is a fatal startup
// condition; the process must not serve without a table.
func buildTable(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*vector.Table, error) {
	if err := glove.Ensure(ctx, &cfg.Vectors, logger); err != nil {
		return nil, fmt.Errorf("vector bootstrap failed: %w", err)
	}

	if cfg.Vectors.CachePath == "" {
		return vector.LoadFile(cfg.Vectors.Path, vector.WithLogger(logger))
	}

	cache, err := storage.OpenCache(cfg.Vectors.CachePath)
	if err != nil {
		logger.Warn("vector cache unavailable, parsing text file", zap.Error(err))
		return vector.LoadFile(cfg.Vectors.Path, vector.WithLogger(logger))
	}
	defer cache.Close()

	table, err := cache.LoadTable(ctx)
	if err == nil {
		logger.Info("vectors loaded from cache",
			zap.String("cache", cfg.Vectors.CachePath),
			zap.Int("words", table.Size()),
			zap.Int("dimension", table.Dim()),
		)
		return table, nil
	}
	if !errors.Is(err, storage.ErrNoCache) {
		logger.Warn("vector cache unreadable, parsing text file", zap.Error(err))
	}

	table, err = vector.LoadFile(cfg.Vectors.Path, vector.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := cache.SaveTable(ctx, table); err != nil {
		logger.Warn("failed to write vector cache", zap.Error(err))
	}
	return table, nil
}

func newSuggester(cfg *config.Config, table *vector.Table) *suggest.Suggester {
	if !cfg.Search.SuggestionsOrDefault() {
		return nil
	}
	return suggest.NewSuggester(table.Words(),
		suggest.WithMaxDistance(cfg.Search.SuggestMaxDistance),
		suggest.WithMaxSuggestions(cfg.Search.MaxSuggestions),
	)
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	table, err := buildTable(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load vector table", zap.Error(err))
	}

	srv := server.NewServer(table, newSuggester(cfg, table), cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// queryArgsReorder moves any flags (and their values) that appear after the
// words to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument.
func queryArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runQuery() {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (for direct mode)")
	serverURL := fs.String("server", "http://localhost:4001", "server URL (empty = load vectors directly)")
	topN := fs.Int("top", 0, "number of related words (default from server config)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(queryArgsReorder(os.Args[2:]))

	if fs.NArg() < 1 {
		fmt.Println("Usage: wordsim query [flags] <word> [word...]")
		os.Exit(1)
	}
	words := fs.Args()

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	req := &models.QueryRequest{Words: words}
	if *topN > 0 {
		req.TopN = topN
	}

	if *serverURL != "" {
		resp, err := queryViaHTTP(*serverURL, req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteQueryResults(os.Stdout, resp, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Direct mode: load the table in-process (slow for large vector files).
	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	table, err := buildTable(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load vector table", zap.Error(err))
	}
	if err := req.Validate(cfg.Search.DefaultTopN, cfg.Search.MaxTopN); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid query: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	centroid := table.Centroid(req.Words)
	if centroid == nil {
		missing := table.Missing(req.Words)
		fmt.Fprintf(os.Stderr, "None of the provided words are in the vocabulary: %s\n",
			strings.Join(missing, ", "))
		if s := newSuggester(cfg, table); s != nil {
			if alts := s.ForMissing(missing, 1); len(alts) > 0 {
				fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", strings.Join(alts, ", "))
			}
		}
		os.Exit(1)
	}
	results := table.Rank(centroid, req.Words, *req.TopN)
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "No related words found (excluding the input words).")
		os.Exit(1)
	}

	common := make([]models.QueryResult, len(results))
	for i, res := range results {
		common[i] = models.QueryResult{Word: res.Word, SimilarityScore: res.Similarity}
	}
	resp := &models.QueryResponse{
		InputWords:    req.Words,
		TopNRequested: *req.TopN,
		CommonWords:   common,
		QueryTimeMs:   time.Since(start).Milliseconds(),
	}
	if err := cli.WriteQueryResults(os.Stdout, resp, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func queryViaHTTP(serverURL string, req *models.QueryRequest) (*models.QueryResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/common-words", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error != "" {
			msg := errResp.Error
			if len(errResp.Suggestions) > 0 {
				msg = fmt.Sprintf("%s (did you mean: %s?)", msg, strings.Join(errResp.Suggestions, ", "))
			}
			return nil, errors.New(msg)
		}
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
	}
	var response models.QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:4001", "server URL")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Get(*serverURL + "/api/v1/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Status failed (%d): %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	var status models.Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
		os.Exit(1)
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("words:      %d   # vocabulary size\n", status.Words)
		fmt.Printf("dimension:  %d   # vector components per word\n", status.Dimension)
		if status.DiskUsageBytes != nil {
			fmt.Printf("disk_bytes: %d   # vectors file + cache on disk\n", *status.DiskUsageBytes)
		}
		if status.Config != nil {
			fmt.Println()
			fmt.Println("# configuration")
			fmt.Printf("vectors_path: %s\n", status.Config.VectorsPath)
			if status.Config.CachePath != "" {
				fmt.Printf("cache_path:   %s\n", status.Config.CachePath)
			}
			fmt.Printf("default_top_n: %d\n", status.Config.DefaultTopN)
			fmt.Printf("max_top_n:     %d\n", status.Config.MaxTopN)
			fmt.Printf("pretty_json:   %t\n", status.Config.PrettyJSON)
			fmt.Printf("suggestions:   %t\n", status.Config.Suggestions)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`wordsim - find words that describe a group of words

Usage:
  wordsim server [flags]             Start the HTTP server
  wordsim query [flags] <words...>   Find common words for the given words
  wordsim status [flags]             Show vocabulary/server status
  wordsim version                    Show version
  wordsim help                       Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/wordsim/config.yaml)
  --debug            Enable debug logging

Query Flags:
  --config string    Config file path (for direct mode)
  --server string    Server URL (default: http://localhost:4001). Use empty (--server "")
                     to load the vector file directly when the server is not running.
  --top int          Number of related words to return
  --output string    Output format: text or json (default: text)

Status Flags:
  --server string    Server URL (default: http://localhost:4001)
  --output string    Output format: text or json (default: text)

Examples:
  wordsim server
  wordsim query king man
  wordsim query --top 10 --output json apple banana cherry
  wordsim status`)
}
