package turtle

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default software rendering
//	cv := turtle.NewCanvas(800, 600)
//
//	// Custom renderer (dependency injection)
//	cv := turtle.NewCanvas(800, 600, turtle.WithRenderer(myRenderer))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	renderer Renderer
	pixmap   *Pixmap
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		renderer: nil, // Will be set to SoftwareRenderer if nil
		pixmap:   nil, // Will be created if nil
	}
}

// WithRenderer sets a custom renderer for the Canvas.
//
// Example:
//
//	customRenderer := mypackage.NewRenderer()
//	cv := turtle.NewCanvas(800, 600, turtle.WithRenderer(customRenderer))
func WithRenderer(r Renderer) CanvasOption {
	return func(o *canvasOptions) {
		o.renderer = r
	}
}

// WithPixmap sets a custom pixmap for the Canvas.
// The pixmap dimensions should match the Canvas dimensions.
//
// Example:
//
//	pm := turtle.NewPixmap(800, 600)
//	cv := turtle.NewCanvas(800, 600, turtle.WithPixmap(pm))
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}
