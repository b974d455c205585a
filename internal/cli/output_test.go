package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tsawler/word-vector-sim/internal/models"
)

func sampleResponse() *models.QueryResponse {
	return &models.QueryResponse{
		QueryID:       "q-1",
		InputWords:    []string{"king", "man"},
		TopNRequested: 2,
		CommonWords: []models.QueryResult{
			{Word: "queen", SimilarityScore: 0.96},
			{Word: "woman", SimilarityScore: 0.93},
		},
		QueryTimeMs: 7,
	}
}

func TestWriteQueryResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteQueryResults(&buf, sampleResponse(), OutputJSON); err != nil {
		t.Fatalf("WriteQueryResults(json): %v", err)
	}
	var decoded models.QueryResponse
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.CommonWords) != 2 || decoded.CommonWords[0].Word != "queen" {
		t.Errorf("decoded=%+v", decoded)
	}
}

func TestWriteQueryResults_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteQueryResults(&buf, sampleResponse(), OutputText); err != nil {
		t.Fatalf("WriteQueryResults(text): %v", err)
	}
	out := buf.String()
	for _, want := range []string{"king, man", "queen", "0.9600", "woman"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	// queen before woman.
	if strings.Index(out, "queen") > strings.Index(out, "woman") {
		t.Error("results out of order in text output")
	}
}
