package models

// QueryResult is a single ranked word with its similarity to the centroid.
// Existing clients depend on these JSON field names; do not rename them.
type QueryResult struct {
	Word            string  `json:"word"`
	SimilarityScore float64 `json:"similarity_score"`
}

// QueryResponse is the success response for a common-words request.
type QueryResponse struct {
	QueryID       string        `json:"query_id,omitempty"`
	InputWords    []string      `json:"input_words"`
	TopNRequested int           `json:"top_n_requested"`
	CommonWords   []QueryResult `json:"common_words"`
	QueryTimeMs   int64         `json:"query_time_ms"`
}

// ErrorResponse is the client-error response shape. MissingWords lists up to
// a configured number of out-of-vocabulary input words; Suggestions carries
// optional did-you-mean alternatives for them.
type ErrorResponse struct {
	Error        string   `json:"error"`
	MissingWords []string `json:"missing_words,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// VocabularyEntry is the response for a single-word vocabulary lookup.
type VocabularyEntry struct {
	Word      string        `json:"word"`
	Known     bool          `json:"known"`
	Dimension int           `json:"dimension,omitempty"`
	Neighbors []QueryResult `json:"neighbors,omitempty"`
}

// Status reports vocabulary and storage information.
type Status struct {
	Words          int           `json:"words"`
	Dimension      int           `json:"dimension"`
	DiskUsageBytes *int64        `json:"disk_usage_bytes,omitempty"`
	Config         *StatusConfig `json:"config,omitempty"`
}

// StatusConfig echoes the effective configuration in a status response.
type StatusConfig struct {
	VectorsPath string `json:"vectors_path,omitempty"`
	CachePath   string `json:"cache_path,omitempty"`
	DefaultTopN int    `json:"default_top_n,omitempty"`
	MaxTopN     int    `json:"max_top_n,omitempty"`
	PrettyJSON  bool   `json:"pretty_json,omitempty"`
	Suggestions bool   `json:"suggestions,omitempty"`
}
