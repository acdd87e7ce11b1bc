package turtle

// Renderer is the interface for rendering paths to a pixmap.
// Paths are in device coordinates.
type Renderer interface {
	// Fill fills a path with the given color.
	// Returns an error if the rendering operation fails.
	Fill(pixmap *Pixmap, path *Path, color RGBA) error

	// Stroke strokes a path with the given color and line width.
	// Returns an error if the rendering operation fails.
	Stroke(pixmap *Pixmap, path *Path, color RGBA, width float64) error
}
