package vector

import (
	"math"
	"sort"
	"strings"
)

// Result is a single ranked hit: a vocabulary word and its cosine similarity
// to the query centroid.
type Result struct {
	Word       string
	Similarity float64
}

// Rank scans every entry in the table, skips words in exclude
// (case-insensitive), scores the rest by cosine similarity against centroid,
// and returns the top N in descending order. Entries whose similarity is
// undefined (zero-norm vector, non-finite result) score MinSimilarity rather
// than erroring. Equal scores order lexicographically by word, so results are
// deterministic regardless of table iteration order. Returns an empty slice
// when no candidates remain after exclusion.
func (t *Table) Rank(centroid []float32, exclude []string, topN int) []Result {
	if topN <= 0 || len(centroid) != t.dim {
		return []Result{}
	}
	excluded := make(map[string]struct{}, len(exclude))
	for _, w := range exclude {
		excluded[strings.ToLower(w)] = struct{}{}
	}

	centroidNorm := L2Norm(centroid)
	results := make([]Result, 0, len(t.words))
	for i, word := range t.words {
		if _, skip := excluded[word]; skip {
			continue
		}
		sim := MinSimilarity
		if centroidNorm != 0 {
			if norm := L2Norm(t.vectors[i]); norm != 0 {
				s := Dot(centroid, t.vectors[i]) / (centroidNorm * norm)
				if !math.IsNaN(s) && !math.IsInf(s, 0) {
					sim = s
				}
			}
		}
		results = append(results, Result{Word: word, Similarity: sim})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].Word < results[j].Word
	})
	if topN > len(results) {
		topN = len(results)
	}
	return results[:topN]
}
