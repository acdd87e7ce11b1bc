package turtle

import (
	"image"
	"io"
)

// Canvas is a raster drawing surface for turtle paths. It maps turtle
// coordinates (origin at the center, Y up) to image coordinates and keeps
// the current stroke/fill style. Rendered operations are also recorded so
// the canvas can be re-encoded as SVG.
type Canvas struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer

	// transform maps turtle space to device space.
	transform Matrix

	strokeColor RGBA
	fillColor   RGBA
	lineWidth   float64

	// ops is the display list, in device coordinates and paint order.
	ops []drawOp
}

// drawOp is one recorded fill or stroke, in device coordinates.
type drawOp struct {
	path  *Path
	color RGBA
	width float64 // stroke width; unused for fills
	fill  bool
}

// NewCanvas creates a new canvas with the given dimensions, a white
// background, and black stroke and fill colors. Optional CanvasOption
// arguments inject a custom renderer or pixmap.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}
	pixmap.Clear(White)

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer()
	}

	return &Canvas{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: renderer,
		transform: Translate(float64(width)/2, float64(height)/2).
			Multiply(Scale(1, -1)),
		strokeColor: Black,
		fillColor:   Black,
		lineWidth:   1,
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Pixmap returns the underlying pixel buffer.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns the canvas image.
func (c *Canvas) Image() image.Image {
	return c.pixmap.ToImage()
}

// Clear fills the canvas with a color and drops the recorded operations.
func (c *Canvas) Clear(col RGBA) {
	c.pixmap.Clear(col)
	c.ops = nil
}

// SetStrokeColor sets the color used for stroking.
func (c *Canvas) SetStrokeColor(col RGBA) {
	c.strokeColor = col
}

// StrokeColor returns the current stroke color.
func (c *Canvas) StrokeColor() RGBA {
	return c.strokeColor
}

// SetFillColor sets the color used for filling.
func (c *Canvas) SetFillColor(col RGBA) {
	c.fillColor = col
}

// FillColor returns the current fill color.
func (c *Canvas) FillColor() RGBA {
	return c.fillColor
}

// SetColors sets stroke and fill colors at once, turtle color() style.
func (c *Canvas) SetColors(stroke, fill RGBA) {
	c.strokeColor = stroke
	c.fillColor = fill
}

// SetLineWidth sets the line width for stroking.
func (c *Canvas) SetLineWidth(width float64) {
	c.lineWidth = width
}

// LineWidth returns the current line width.
func (c *Canvas) LineWidth() float64 {
	return c.lineWidth
}

// StrokePath strokes a path of turtle coordinates with the current
// stroke color and line width.
func (c *Canvas) StrokePath(p *Path) error {
	return c.strokeStyled(p, c.strokeColor, c.lineWidth)
}

// StrokeLine strokes a single segment of turtle coordinates with the
// current stroke color and line width.
func (c *Canvas) StrokeLine(a, b Point) error {
	return c.strokeSegment(strokeSegment{a: a, b: b, color: c.strokeColor, width: c.lineWidth})
}

// strokeSegment strokes one buffered turtle segment with its captured style.
func (c *Canvas) strokeSegment(seg strokeSegment) error {
	p := NewPath()
	p.MoveTo(seg.a.X, seg.a.Y)
	p.LineTo(seg.b.X, seg.b.Y)
	return c.strokeStyled(p, seg.color, seg.width)
}

func (c *Canvas) strokeStyled(p *Path, col RGBA, width float64) error {
	device := p.Transform(c.transform)
	c.ops = append(c.ops, drawOp{path: device, color: col, width: width})
	return c.renderer.Stroke(c.pixmap, device, col, width)
}

// FillPath fills a path of turtle coordinates with the current fill color.
func (c *Canvas) FillPath(p *Path) error {
	device := p.Transform(c.transform)
	c.ops = append(c.ops, drawOp{path: device, color: c.fillColor, fill: true})
	Logger().Debug("canvas fill", "subpaths", len(device.Subpaths()))
	return c.renderer.Fill(c.pixmap, device, c.fillColor)
}

// EncodePNG writes the canvas as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}
