// Package vector provides the in-memory word vector table and exact
// brute-force similarity search over it.
package vector

import (
	"fmt"
	"strings"
)

// Table maps lowercase words to fixed-length embedding vectors. It is built
// once at startup (by Load or the storage cache) and must not be modified
// afterwards; a built Table is safe for concurrent readers without locking.
type Table struct {
	dim     int
	index   map[string]int
	words   []string
	vectors [][]float32
}

// NewTable creates an empty table for vectors of the given dimension.
func NewTable(dim int) (*Table, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("dimension must be positive, got %d", dim)
	}
	return &Table{
		dim:   dim,
		index: make(map[string]int),
	}, nil
}

// Put adds a word and its vector. The word is lowercased. A vector whose
// length differs from the table dimension is rejected. When the word already
// exists its vector is overwritten in place (last occurrence wins).
func (t *Table) Put(word string, vec []float32) error {
	if len(vec) != t.dim {
		return fmt.Errorf("vector dimension mismatch for %q: got %d, expected %d", word, len(vec), t.dim)
	}
	word = strings.ToLower(word)
	v := make([]float32, t.dim)
	copy(v, vec)
	if i, ok := t.index[word]; ok {
		t.vectors[i] = v
		return nil
	}
	t.index[word] = len(t.words)
	t.words = append(t.words, word)
	t.vectors = append(t.vectors, v)
	return nil
}

// Lookup returns the vector for word (case-insensitive). The returned slice
// is the table's own storage and must not be modified.
func (t *Table) Lookup(word string) ([]float32, bool) {
	i, ok := t.index[strings.ToLower(word)]
	if !ok {
		return nil, false
	}
	return t.vectors[i], true
}

// Has reports whether word is in the vocabulary (case-insensitive).
func (t *Table) Has(word string) bool {
	_, ok := t.index[strings.ToLower(word)]
	return ok
}

// Size returns the number of words in the table.
func (t *Table) Size() int {
	return len(t.words)
}

// Dim returns the vector dimension shared by all entries.
func (t *Table) Dim() int {
	return t.dim
}

// Words returns a copy of the vocabulary.
func (t *Table) Words() []string {
	out := make([]string, len(t.words))
	copy(out, t.words)
	return out
}
