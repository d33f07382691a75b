package sampling

import (
	"math"
	"testing"
)

func TestLogGrid(t *testing.T) {
	g, err := LogGrid(1e-3, 1e1, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1e-3, 1e-2, 1e-1, 1, 1e1}
	for i := range want {
		if math.Abs(g[i]-want[i])/want[i] > 1e-12 {
			t.Errorf("point %d: expected %g, got %g", i, want[i], g[i])
		}
	}
}

func TestLogGridInvalid(t *testing.T) {
	tests := []struct {
		emin, emax float64
		n          int
	}{
		{0, 1, 10},
		{1, 1, 10},
		{2, 1, 10},
		{1, 2, 1},
	}
	for _, tt := range tests {
		if _, err := LogGrid(tt.emin, tt.emax, tt.n); err == nil {
			t.Errorf("LogGrid(%g, %g, %d): expected error", tt.emin, tt.emax, tt.n)
		}
	}
}
