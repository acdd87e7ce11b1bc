package turtle

import (
	"fmt"
	"io"
	"strings"
)

// EncodeSVG writes the canvas's recorded operations as an SVG document.
// Operations appear in paint order, so the result matches the raster
// output. The background is emitted as a full-size rect.
func (c *Canvas) EncodeSVG(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		c.width, c.height, c.width, c.height)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"<rect width=\"%d\" height=\"%d\" fill=\"%s\"/>\n",
		c.width, c.height, White.Hex()); err != nil {
		return err
	}

	for _, op := range c.ops {
		d := svgPathData(op.path)
		if d == "" {
			continue
		}
		if op.fill {
			err = writeSVGFill(w, d, op.color)
		} else {
			err = writeSVGStroke(w, d, op.color, op.width)
		}
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "</svg>\n")
	return err
}

func writeSVGFill(w io.Writer, d string, col RGBA) error {
	opacity := ""
	if col.A < 1 {
		opacity = fmt.Sprintf(" fill-opacity=\"%.3f\"", col.A)
	}
	_, err := fmt.Fprintf(w,
		"<path d=\"%s\" fill=\"%s\"%s fill-rule=\"nonzero\" stroke=\"none\"/>\n",
		d, col.Hex(), opacity)
	return err
}

func writeSVGStroke(w io.Writer, d string, col RGBA, width float64) error {
	opacity := ""
	if col.A < 1 {
		opacity = fmt.Sprintf(" stroke-opacity=\"%.3f\"", col.A)
	}
	_, err := fmt.Fprintf(w,
		"<path d=\"%s\" fill=\"none\" stroke=\"%s\"%s stroke-width=\"%s\" stroke-linecap=\"square\"/>\n",
		d, col.Hex(), opacity, svgNum(width))
	return err
}

// svgPathData renders a path as an SVG path data string.
func svgPathData(p *Path) string {
	var b strings.Builder
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			fmt.Fprintf(&b, "M%s %s", svgNum(e.Point.X), svgNum(e.Point.Y))
		case LineTo:
			fmt.Fprintf(&b, "L%s %s", svgNum(e.Point.X), svgNum(e.Point.Y))
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// svgNum formats a coordinate compactly.
func svgNum(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}
