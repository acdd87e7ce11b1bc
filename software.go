package turtle

import (
	"image"

	"golang.org/x/image/vector"
)

// SoftwareRenderer is a CPU renderer built on the x/image/vector coverage
// rasterizer. Fills use the non-zero winding rule; strokes expand each
// line segment into a quad with square caps, which doubles as a bevel-ish
// join at turtle line widths.
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Fill implements Renderer.Fill with anti-aliasing.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, color RGBA) error {
	ras := vector.NewRasterizer(pixmap.Width(), pixmap.Height())
	for _, sub := range p.Subpaths() {
		if len(sub) < 3 {
			continue
		}
		ras.MoveTo(float32(sub[0].X), float32(sub[0].Y))
		for _, pt := range sub[1:] {
			ras.LineTo(float32(pt.X), float32(pt.Y))
		}
		ras.ClosePath()
	}
	composite(pixmap, ras, color)
	return nil
}

// Stroke implements Renderer.Stroke with anti-aliasing.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, color RGBA, width float64) error {
	hw := width / 2
	if hw <= 0 {
		hw = 0.5
	}

	ras := vector.NewRasterizer(pixmap.Width(), pixmap.Height())
	for _, sub := range p.Subpaths() {
		for i := 1; i < len(sub); i++ {
			segmentQuad(ras, sub[i-1], sub[i], hw)
		}
	}
	composite(pixmap, ras, color)
	return nil
}

// segmentQuad adds the quad covering a line segment widened by hw on each
// side and extended by hw past both endpoints (square caps).
func segmentQuad(ras *vector.Rasterizer, a, b Point, hw float64) {
	d := b.Sub(a).Normalize()
	if d.Length() == 0 {
		// Zero-length segment: draw a small square dot.
		d = Pt(1, 0)
	}
	n := d.Perp().Mul(hw)
	ext := d.Mul(hw)
	a = a.Sub(ext)
	b = b.Add(ext)

	ras.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	ras.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	ras.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	ras.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	ras.ClosePath()
}

// composite draws the rasterizer's coverage into the pixmap with the
// given color, source-over.
func composite(pixmap *Pixmap, ras *vector.Rasterizer, color RGBA) {
	w, h := pixmap.Width(), pixmap.Height()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := y * mask.Stride
		for x := 0; x < w; x++ {
			a := mask.Pix[row+x]
			if a == 0 {
				continue
			}
			pixmap.BlendPixel(x, y, color, float64(a)/255)
		}
	}
}
