package vector

import (
	"math"
	"testing"
)

func buildTable(t *testing.T, dim int, entries map[string][]float32) *Table {
	t.Helper()
	tbl, err := NewTable(dim)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for w, v := range entries {
		if err := tbl.Put(w, v); err != nil {
			t.Fatalf("Put(%s): %v", w, err)
		}
	}
	return tbl
}

func TestCentroid(t *testing.T) {
	tbl := buildTable(t, 2, map[string][]float32{
		"king": {1, 1},
		"man":  {1, 0},
	})
	got := tbl.Centroid([]string{"king", "man"})
	if got == nil {
		t.Fatal("Centroid returned nil for matched words")
	}
	if len(got) != 2 {
		t.Fatalf("centroid dimension=%d, want 2", len(got))
	}
	if got[0] != 1 || got[1] != 0.5 {
		t.Errorf("centroid=%v, want [1 0.5]", got)
	}
}

func TestCentroid_IgnoresUnknownWords(t *testing.T) {
	tbl := buildTable(t, 2, map[string][]float32{"cat": {2, 4}})
	got := tbl.Centroid([]string{"cat", "zzznotaword"})
	if got == nil {
		t.Fatal("Centroid returned nil with one matched word")
	}
	// Mean over the single matched vector only.
	if got[0] != 2 || got[1] != 4 {
		t.Errorf("centroid=%v, want [2 4]", got)
	}
}

func TestCentroid_NoMatch(t *testing.T) {
	tbl := buildTable(t, 2, map[string][]float32{"cat": {1, 2}})
	if got := tbl.Centroid(nil); got != nil {
		t.Errorf("Centroid(nil)=%v, want nil", got)
	}
	if got := tbl.Centroid([]string{}); got != nil {
		t.Errorf("Centroid([])=%v, want nil", got)
	}
	if got := tbl.Centroid([]string{"zzznotaword"}); got != nil {
		t.Errorf("Centroid(unknown)=%v, want nil", got)
	}
}

func TestCentroid_CaseInsensitive(t *testing.T) {
	tbl := buildTable(t, 1, map[string][]float32{"cat": {3}})
	got := tbl.Centroid([]string{"CAT"})
	if got == nil || got[0] != 3 {
		t.Errorf("Centroid([CAT])=%v, want [3]", got)
	}
}

func TestCentroid_DuplicatesCounted(t *testing.T) {
	tbl := buildTable(t, 1, map[string][]float32{
		"a": {0},
		"b": {3},
	})
	// "a" appears twice, skewing the mean toward it: (0+0+3)/3 = 1.
	got := tbl.Centroid([]string{"a", "a", "b"})
	if got == nil {
		t.Fatal("Centroid returned nil")
	}
	if math.Abs(float64(got[0])-1) > 1e-6 {
		t.Errorf("centroid=%v, want [1]", got)
	}
}

func TestMissing(t *testing.T) {
	tbl := buildTable(t, 1, map[string][]float32{"cat": {1}, "dog": {2}})
	got := tbl.Missing([]string{"Cat", "bird", "dog", "fish"})
	if len(got) != 2 || got[0] != "bird" || got[1] != "fish" {
		t.Errorf("Missing=%v, want [bird fish] in input order", got)
	}
	if got := tbl.Missing([]string{"cat"}); len(got) != 0 {
		t.Errorf("Missing=%v, want empty", got)
	}
}
