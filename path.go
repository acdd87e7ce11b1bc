package turtle

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path made of straight line segments.
// A pen trail never contains curves, so MoveTo, LineTo and Close are the
// only elements.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Subpaths returns the path as a list of polylines, one per subpath.
// A closed subpath repeats its first point at the end.
func (p *Path) Subpaths() [][]Point {
	var subpaths [][]Point
	var cur []Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(cur) > 1 {
				subpaths = append(subpaths, cur)
			}
			cur = []Point{e.Point}
		case LineTo:
			cur = append(cur, e.Point)
		case Close:
			if len(cur) > 1 {
				cur = append(cur, cur[0])
				subpaths = append(subpaths, cur)
			}
			cur = nil
		}
	}
	if len(cur) > 1 {
		subpaths = append(subpaths, cur)
	}
	return subpaths
}

// Length returns the total drawn length of the path.
// Pen-up jumps between subpaths do not count.
func (p *Path) Length() float64 {
	total := 0.0
	for _, sub := range p.Subpaths() {
		for i := 1; i < len(sub); i++ {
			total += sub[i].Distance(sub[i-1])
		}
	}
	return total
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
