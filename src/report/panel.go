package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// series is one (x, y, style) line on a panel.
type series struct {
	name   string
	xs, ys []float64
	style  chart.Style
}

// renderLinePanel draws one chart panel with the given series and labels and
// returns it as an image. Series must be non-empty and internally
// length-consistent.
func renderLinePanel(title, xLabel, yLabel string, ss []series, legend bool) (image.Image, error) {
	if len(ss) == 0 {
		return nil, fmt.Errorf("panel %q: no series", title)
	}
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	chartSeries := make([]chart.Series, 0, len(ss))
	for _, s := range ss {
		if len(s.xs) != len(s.ys) {
			return nil, fmt.Errorf("panel %q series %q: length mismatch x=%d y=%d", title, s.name, len(s.xs), len(s.ys))
		}
		if len(s.xs) == 0 {
			return nil, fmt.Errorf("panel %q series %q: empty", title, s.name)
		}
		for _, v := range s.ys {
			if math.IsNaN(v) {
				continue
			}
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
		xs, ys := s.xs, s.ys
		// go-chart needs at least two X values to establish a range.
		if len(xs) == 1 {
			xs = []float64{xs[0], xs[0] + 1}
			ys = []float64{ys[0], ys[0]}
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    s.name,
			XValues: xs,
			YValues: ys,
			Style:   s.style,
		})
	}

	var yRange *chart.ContinuousRange
	var yTicks []chart.Tick
	if minY != math.MaxFloat64 && maxY != -math.MaxFloat64 {
		nMin, nMax := niceAxisBounds(minY, maxY)
		yRange = &chart.ContinuousRange{Min: nMin, Max: nMax}
		yTicks = niceTicks(nMin, nMax, 6)
	}

	ch := chart.Chart{
		Title:      title,
		Width:      panelWidth,
		Height:     panelHeight,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      chart.XAxis{Name: xLabel},
		YAxis:      chart.YAxis{Name: yLabel, Range: yRange, Ticks: yTicks},
		Series:     chartSeries,
	}
	if legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("panel %q: render: %w", title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("panel %q: decode: %w", title, err)
	}
	return img, nil
}

// log10Series transforms y values for the log-scale complexity panel.
// Non-positive values are clamped to the smallest positive value in the
// series so the transform stays finite.
func log10Series(ys []float64) []float64 {
	minPos := math.MaxFloat64
	for _, v := range ys {
		if v > 0 && v < minPos {
			minPos = v
		}
	}
	if minPos == math.MaxFloat64 {
		minPos = 1e-3
	}
	out := make([]float64, len(ys))
	for i, v := range ys {
		if v <= 0 {
			v = minPos
		}
		out[i] = math.Log10(v)
	}
	return out
}
