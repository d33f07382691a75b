package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/sampling"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(24)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Winner = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))
)

// RenderHistogram draws one horizontal bar per bin, scaled so the fullest
// bin spans width cells.
func RenderHistogram(h *sampling.Histogram, width int, bar lipgloss.Style) string {
	peak := 0
	for _, n := range h.Bins {
		peak = max(peak, n)
	}

	var b strings.Builder
	step := 2 / float64(len(h.Bins))
	for i, n := range h.Bins {
		lo := -1 + float64(i)*step
		cells := 0
		if peak > 0 {
			cells = n * width / peak
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			Subtle.Render(fmt.Sprintf("%+5.2f", lo)),
			bar.Render(strings.Repeat("█", cells)+strings.Repeat("░", width-cells)),
			Subtle.Render(fmt.Sprintf("%d", n)))
	}
	return b.String()
}

// RenderCandidates lists factory priorities, marking the selected one.
func RenderCandidates(cands []host.Candidate) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-20s %8s", "FACTORY", "PRIORITY")))
	b.WriteString("\n")
	for i, c := range cands {
		line := fmt.Sprintf("%-20s %8s", c.Factory, c.Priority)
		if i == 0 && c.Priority.CanServe() {
			b.WriteString(Winner.Render(line + "  <- selected"))
		} else {
			b.WriteString(Subtle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func RenderMetrics(metrics map[string]float64, names []string) string {
	var b strings.Builder
	for _, name := range names {
		v, ok := metrics[name]
		if !ok {
			continue
		}
		b.WriteString(MetricLabel.Render(name))
		b.WriteString(MetricValue.Render(fmt.Sprintf("%.6g", v)))
		b.WriteString("\n")
	}
	return b.String()
}
