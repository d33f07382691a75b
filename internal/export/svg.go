package export

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Point struct {
	X, Y float64
}

// CurveOptions controls the look of an exported curve.
type CurveOptions struct {
	Width, Height int
	Stroke        string
	LogX          bool // plot X on a log10 axis, all X must be positive
}

func DefaultCurveOptions() CurveOptions {
	return CurveOptions{Width: 640, Height: 360, Stroke: "#00ffff", LogX: true}
}

// CurveToSVG draws points as a single polyline, e.g. a cross-section against
// neutron energy.
func CurveToSVG(points []Point, opts CurveOptions) (string, error) {
	if len(points) < 2 {
		return "", errors.New("export: need at least two points")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return "", fmt.Errorf("export: invalid size %dx%d", opts.Width, opts.Height)
	}

	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		if opts.LogX {
			if p.X <= 0 {
				return "", fmt.Errorf("export: non-positive x %g on log axis", p.X)
			}
			xs[i] = math.Log10(p.X)
		}
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := points[0].Y, points[0].Y
	for i, p := range points {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	w, h := float64(opts.Width), float64(opts.Height)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		opts.Width, opts.Height, opts.Width, opts.Height, opts.Stroke)

	for i, p := range points {
		x := (xs[i] - minX) / rangeX * w
		y := h - (p.Y-minY)/rangeY*h
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String(), nil
}
