// Command stardemo draws a gallery of star polygons with the turtle library.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/turtle"
)

func main() {
	var (
		size    = flag.Int("size", 800, "canvas size in pixels (square)")
		output  = flag.String("output", "stars.png", "output file for the star gallery")
		rosette = flag.String("rosette", "rosette.png", "output file for the filled rosette")
		svg     = flag.Bool("svg", false, "also write .svg files next to the PNGs")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := drawGallery(*size, *output, *svg); err != nil {
		log.Fatalf("gallery: %v", err)
	}
	if err := drawRosette(*size, *rosette, *svg); err != nil {
		log.Fatalf("rosette: %v", err)
	}
}

// drawGallery traces the {7/m} family on one canvas: the enclosing circle,
// the convex heptagon {7/1}, the filled heptagram {7/2}, the hull-only
// {7/-3}, and two hulls with fixed edge lengths.
func drawGallery(size int, output string, svg bool) error {
	cv := turtle.NewCanvas(size, size)
	t := turtle.NewTurtleOnCanvas(cv)

	r := float64(size) * 250.0 / 800.0
	const n = 7

	// Start on the circle so every figure shares its vertices.
	t.PenUp()
	t.SetY(-r)
	t.PenDown()

	cv.SetStrokeColor(turtle.Black)
	t.Circle(r, 60)

	cv.SetStrokeColor(turtle.Green)
	if err := turtle.DrawStar(t, r, n, turtle.WithStep(1)); err != nil {
		return err
	}

	cv.SetColors(turtle.Black, turtle.Yellow)
	t.BeginFill()
	if err := turtle.DrawStar(t, r, n, turtle.WithStep(2)); err != nil {
		return err
	}

	cv.SetStrokeColor(turtle.Blue)
	if err := turtle.DrawStar(t, r, n, turtle.WithStep(-3)); err != nil {
		return err
	}

	cv.SetStrokeColor(turtle.Orange)
	for _, edge := range []float64{r * 0.88, r * 0.8} {
		if err := turtle.DrawStar(t, r, n, turtle.WithEdgeLength(edge)); err != nil {
			return err
		}
	}

	cv.SetFillColor(turtle.LightBlue)
	t.EndFill()

	return save(cv, output, svg)
}

// drawRosette traces the dense default-step star {36/17} as one filled
// figure.
func drawRosette(size int, output string, svg bool) error {
	cv := turtle.NewCanvas(size, size)
	t := turtle.NewTurtleOnCanvas(cv)

	r := float64(size) * 0.4

	cv.SetColors(turtle.Red, turtle.Yellow)
	t.PenUp()
	t.SetY(-r)
	t.PenDown()

	t.BeginFill()
	if err := turtle.DrawStar(t, r, 36); err != nil {
		return err
	}
	t.EndFill()

	return save(cv, output, svg)
}

// save writes the canvas as PNG, plus SVG when requested.
func save(cv *turtle.Canvas, output string, svg bool) error {
	if err := cv.SavePNG(output); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d)", output, cv.Width(), cv.Height())

	if !svg {
		return nil
	}
	name := strings.TrimSuffix(output, ".png") + ".svg"
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := cv.EncodeSVG(f); err != nil {
		return err
	}
	log.Printf("wrote %s", name)
	return nil
}
