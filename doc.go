// Package turtle provides a small turtle-graphics library for Go with a
// star-polygon tracer at its core.
//
// # Overview
//
// turtle models the classic pen-on-paper drawing cursor: a position, a
// heading, and a pen that is either up or down. Moving the cursor with the
// pen down records line segments into a vector path. On top of that model,
// DrawStar traces any regular star polygon {n/m} (or its non-crossing hull
// variant) inscribed in a circle, including the stellation decomposition of
// non-coprime figures, and always returns the cursor to its starting
// position and heading.
//
// # Quick Start
//
//	import "github.com/gogpu/turtle"
//
//	// A turtle attached to a raster canvas.
//	cv := turtle.NewCanvas(512, 512)
//	t := turtle.NewTurtleOnCanvas(cv)
//
//	// Trace a heptagram {7/2}.
//	cv.SetStrokeColor(turtle.Black)
//	if err := turtle.DrawStar(t, 200, 7, turtle.WithStep(2)); err != nil {
//		log.Fatal(err)
//	}
//
//	// Save to PNG.
//	cv.SavePNG("star.png")
//
// # Architecture
//
// The library is organized into:
//   - Planner: DrawStar and the Cursor interface it draws through
//   - Cursor: Turtle, the concrete recording cursor
//   - Output: Canvas, Pixmap, Renderer (software raster), SVG encoding
//
// DrawStar depends only on the Cursor interface, so any pen-like collaborator
// can be driven, not just a Turtle.
//
// # Coordinate System
//
// The turtle lives in mathematical coordinates:
//   - Origin (0,0) at the canvas center
//   - X increases right, Y increases up
//   - Heading 0 points right, positive rotation is counter-clockwise
//
// Canvas maps this to image coordinates (top-left origin, Y down) when
// rasterizing or encoding SVG.
package turtle

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
