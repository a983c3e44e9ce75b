package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// compositeGrid arranges equally sized panels into a grid with the given
// column count, left to right, top to bottom. Missing trailing cells are
// left white.
func compositeGrid(panels []image.Image, cols int) (*image.RGBA, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("composite: no panels")
	}
	if cols < 1 {
		cols = 1
	}
	rows := (len(panels) + cols - 1) / cols
	out := image.NewRGBA(image.Rect(0, 0, cols*panelWidth, rows*panelHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for i, p := range panels {
		if p == nil {
			return nil, fmt.Errorf("composite: nil panel %d", i)
		}
		x := (i % cols) * panelWidth
		y := (i / cols) * panelHeight
		cell := image.Rect(x, y, x+panelWidth, y+panelHeight)
		draw.Draw(out, cell, p, p.Bounds().Min, draw.Over)
	}
	return out, nil
}

// drawCaption writes a small caption line in the bottom-left corner of the
// composed figure.
func drawCaption(img *image.RGBA, text string) {
	if img == nil || strings.TrimSpace(text) == "" {
		return
	}
	b := img.Bounds()
	face := basicfont.Face7x13
	x := b.Min.X + 8
	y := b.Max.Y - 6
	shadow := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 220}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)},
	}
	shadow.DrawString(text)
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 90, G: 90, B: 90, A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(text)
}

// writePNG encodes img and writes it to path.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
