// Package vector provides similarity helpers for embedding vectors.
package vector

import "math"

// MinSimilarity is the score assigned when cosine similarity is undefined
// (zero-norm vector) or not a real number. It equals the lowest value cosine
// similarity can reach, so degenerate entries sort last.
const MinSimilarity = -1.0

// Dot returns the dot product of two vectors.
func Dot(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

// L2Norm returns the L2 norm of a vector.
func L2Norm(x []float32) float64 {
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// CosineSimilarity returns the cosine similarity of two vectors, nominally in
// [-1, 1]. If either vector has zero norm, or the result is not a real number,
// it returns MinSimilarity.
func CosineSimilarity(a, b []float32) float64 {
	na := L2Norm(a)
	nb := L2Norm(b)
	if na == 0 || nb == 0 {
		return MinSimilarity
	}
	s := Dot(a, b) / (na * nb)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return MinSimilarity
	}
	return s
}
