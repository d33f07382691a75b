package sampling

import (
	"fmt"
	"math"
)

// LogGrid returns n energies spaced logarithmically from emin to emax.
func LogGrid(emin, emax float64, n int) ([]float64, error) {
	if !(emin > 0) || !(emax > emin) {
		return nil, fmt.Errorf("invalid energy range [%g, %g]", emin, emax)
	}
	if n < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %d", n)
	}
	out := make([]float64, n)
	lo, hi := math.Log(emin), math.Log(emax)
	for i := range out {
		out[i] = math.Exp(lo + (hi-lo)*float64(i)/float64(n-1))
	}
	out[0], out[n-1] = emin, emax
	return out, nil
}
