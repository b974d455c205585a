package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/word-vector-sim/internal/models"
	"github.com/tsawler/word-vector-sim/internal/storage"
)

func (s *Server) handleCommonWords(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(s.config.Search.DefaultTopN, s.config.Search.MaxTopN); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	queryID := uuid.NewString()
	start := time.Now()
	s.logger.Debug("common-words request",
		zap.String("query_id", queryID),
		zap.Strings("words", req.Words),
		zap.Int("top_n", *req.TopN),
	)

	centroid := s.table.Centroid(req.Words)
	if centroid == nil {
		s.respondNoMatch(w, req.Words)
		return
	}

	// The exclusion set is the original query words, not the matched subset.
	results := s.table.Rank(centroid, req.Words, *req.TopN)
	if len(results) == 0 {
		s.respondJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error: "could not find any related words in the vocabulary (excluding the input words)",
		})
		return
	}

	common := make([]models.QueryResult, len(results))
	for i, res := range results {
		common[i] = models.QueryResult{Word: res.Word, SimilarityScore: res.Similarity}
	}
	s.respondJSON(w, http.StatusOK, models.QueryResponse{
		QueryID:       queryID,
		InputWords:    req.Words,
		TopNRequested: *req.TopN,
		CommonWords:   common,
		QueryTimeMs:   time.Since(start).Milliseconds(),
	})
}

// respondNoMatch reports which input words are absent from the vocabulary,
// capped at the configured count with a trailing marker, plus optional
// did-you-mean suggestions.
func (s *Server) respondNoMatch(w http.ResponseWriter, words []string) {
	missing := s.table.Missing(words)
	msg := "none of the provided words were found in the vocabulary"
	if n := len(missing); n > 0 {
		msg = fmt.Sprintf("%s; missing words (%d total): %s", msg, n,
			strings.Join(capList(missing, s.config.Search.MaxMissingReported), ", "))
	}

	resp := models.ErrorResponse{
		Error:        msg,
		MissingWords: capList(missing, s.config.Search.MaxMissingReported),
	}
	if s.suggester != nil {
		resp.Suggestions = s.suggester.ForMissing(missing, 1)
	}
	s.respondJSON(w, http.StatusBadRequest, resp)
}

// capList returns at most limit items, appending "..." when truncated.
func capList(items []string, limit int) []string {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	out := make([]string, 0, limit+1)
	out = append(out, items[:limit]...)
	return append(out, "...")
}

func (s *Server) handleVocabularyWord(w http.ResponseWriter, r *http.Request) {
	word := strings.ToLower(chi.URLParam(r, "word"))
	entry := models.VocabularyEntry{Word: word}

	vec, ok := s.table.Lookup(word)
	if !ok {
		s.respondJSON(w, http.StatusOK, entry)
		return
	}
	entry.Known = true
	entry.Dimension = s.table.Dim()

	neighbors := s.table.Rank(vec, []string{word}, s.config.Search.DefaultTopN)
	entry.Neighbors = make([]models.QueryResult, len(neighbors))
	for i, res := range neighbors {
		entry.Neighbors[i] = models.QueryResult{Word: res.Word, SimilarityScore: res.Similarity}
	}
	s.respondJSON(w, http.StatusOK, entry)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	disk := storage.DiskUsageBytes(s.config.Vectors.Path, s.config.Vectors.CachePath)
	status := models.Status{
		Words:          s.table.Size(),
		Dimension:      s.table.Dim(),
		DiskUsageBytes: &disk,
		Config: &models.StatusConfig{
			VectorsPath: s.config.Vectors.Path,
			CachePath:   s.config.Vectors.CachePath,
			DefaultTopN: s.config.Search.DefaultTopN,
			MaxTopN:     s.config.Search.MaxTopN,
			PrettyJSON:  s.config.Server.PrettyJSON,
			Suggestions: s.suggester != nil,
		},
	}
	s.respondJSON(w, http.StatusOK, status)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if s.config.Server.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, models.ErrorResponse{Error: message})
}
