package vector

// Centroid returns the component-wise mean of the vectors for the given words.
// Each word is lowercased and looked up independently; duplicates each
// contribute their vector to the average. Returns nil when none of the words
// are in the table, so callers can distinguish "no match" from a zero vector.
func (t *Table) Centroid(words []string) []float32 {
	sum := make([]float64, t.dim)
	matched := 0
	for _, w := range words {
		vec, ok := t.Lookup(w)
		if !ok {
			continue
		}
		for i, v := range vec {
			sum[i] += float64(v)
		}
		matched++
	}
	if matched == 0 {
		return nil
	}
	out := make([]float32, t.dim)
	for i := range sum {
		out[i] = float32(sum[i] / float64(matched))
	}
	return out
}

// Missing returns the words from the input that are absent from the table
// (case-insensitive), in input order.
func (t *Table) Missing(words []string) []string {
	missing := make([]string, 0)
	for _, w := range words {
		if !t.Has(w) {
			missing = append(missing, w)
		}
	}
	return missing
}
