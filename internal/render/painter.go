//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads palette-indexed cell data into a w*h image and draws
// it scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), img: ebiten.NewImage(w, h)}
}

// Blit converts cells through palette and draws them at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// Sparkline renders a series of values as a small column chart.
type Sparkline struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	Foreground color.RGBA
	Background color.RGBA
}

// NewSparkline allocates a w*h chart.
func NewSparkline(w, h int) *Sparkline {
	return &Sparkline{
		w:          w,
		h:          h,
		img:        ebiten.NewImage(w, h),
		buf:        make([]byte, 4*w*h),
		Foreground: color.RGBA{R: 235, G: 60, B: 40, A: 255},
		Background: color.RGBA{R: 16, G: 16, B: 20, A: 200},
	}
}

// Draw plots values between lo and hi at (x, y) on dst.
func (s *Sparkline) Draw(dst *ebiten.Image, values []int, lo, hi int, x, y float64) {
	fillSparkRGBA(s.buf, s.w, s.h, values, lo, hi, s.Foreground, s.Background)
	s.img.WritePixels(s.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(s.img, op)
}

// Size returns the chart dimensions.
func (s *Sparkline) Size() (int, int) { return s.w, s.h }
