package report

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// boxGroup is one labeled distribution on a box plot panel.
type boxGroup struct {
	name   string
	values []float64
	fill   color.Color
}

// renderBoxPanel draws one distribution panel with gonum/plot, which has the
// box plot primitive go-chart lacks, and returns it as an image of the same
// size as the line panels.
func renderBoxPanel(title, yLabel string, groups []boxGroup) (image.Image, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("panel %q: no groups", title)
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	names := make([]string, 0, len(groups))
	for i, g := range groups {
		if len(g.values) == 0 {
			return nil, fmt.Errorf("panel %q group %q: empty", title, g.name)
		}
		b, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(g.values))
		if err != nil {
			return nil, fmt.Errorf("panel %q group %q: %w", title, g.name, err)
		}
		if g.fill != nil {
			b.FillColor = g.fill
		}
		p.Add(b)
		names = append(names, g.name)
	}
	p.NominalX(names...)

	// At 72 DPI one vg point equals one pixel, so the panel comes out at
	// exactly panelWidth x panelHeight like the go-chart panels.
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(panelWidth), vg.Length(panelHeight)),
		vgimg.UseDPI(72),
	)
	p.Draw(vgdraw.New(c))
	return c.Image(), nil
}
