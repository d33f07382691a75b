package sampling

import "github.com/san-kum/ncscatter/internal/host"

// Histogram counts scattering cosines in equal bins over [-1,1].
type Histogram struct {
	Bins  []int
	Total int
}

func NewHistogram(bins int) *Histogram {
	if bins < 1 {
		bins = 1
	}
	return &Histogram{Bins: make([]int, bins)}
}

func (h *Histogram) Fill(mu host.CosineScatAngle) {
	i := int((float64(mu) + 1) / 2 * float64(len(h.Bins)))
	i = max(0, min(i, len(h.Bins)-1))
	h.Bins[i]++
	h.Total++
}

func (h *Histogram) FillAll(events []host.ScatterOutcome) {
	for _, ev := range events {
		h.Fill(ev.Mu)
	}
}

// Density returns bin contents normalised to a probability density over mu.
func (h *Histogram) Density() []float64 {
	out := make([]float64, len(h.Bins))
	if h.Total == 0 {
		return out
	}
	width := 2 / float64(len(h.Bins))
	for i, n := range h.Bins {
		out[i] = float64(n) / (float64(h.Total) * width)
	}
	return out
}

func (h *Histogram) Reset() {
	clear(h.Bins)
	h.Total = 0
}
