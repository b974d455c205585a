package vector

import (
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	if got := Dot([]float32{1, 2, 3}, []float32{4, 5, 6}); got != 32 {
		t.Errorf("Dot=%v, want 32", got)
	}
	if got := Dot([]float32{1}, []float32{1, 2}); got != 0 {
		t.Errorf("Dot with mismatched lengths=%v, want 0", got)
	}
	if got := Dot(nil, nil); got != 0 {
		t.Errorf("Dot(nil,nil)=%v, want 0", got)
	}
}

func TestL2Norm(t *testing.T) {
	if got := L2Norm([]float32{3, 4}); got != 5 {
		t.Errorf("L2Norm=%v, want 5", got)
	}
	if got := L2Norm([]float32{0, 0}); got != 0 {
		t.Errorf("L2Norm(zero)=%v, want 0", got)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"magnitude independent", []float32{2, 0}, []float32{5, 0}, 1},
		{"zero norm a", []float32{0, 0}, []float32{1, 0}, MinSimilarity},
		{"zero norm b", []float32{1, 0}, []float32{0, 0}, MinSimilarity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("CosineSimilarity=%v, want %v", got, tt.want)
			}
		})
	}
}
