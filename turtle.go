package turtle

import "math"

// Turtle is the concrete Cursor: a pen with a position, a heading, and an
// up/down state, living in mathematical coordinates (origin at the center,
// Y up). Every pen-down move is recorded into a vector path; a turtle
// attached to a Canvas also rasterizes its moves as it makes them.
//
// Angle values cross the Turtle API in the current angle unit (degrees by
// default, the classic turtle convention). Internally the heading is kept
// in radians.
//
// A Turtle is not safe for concurrent use.
type Turtle struct {
	pos     Point
	heading float64 // radians, 0 = +X, counter-clockwise positive
	pen     bool
	unit    AngleUnit

	trail    *Path
	needMove bool // a pen-up move happened; trail needs a MoveTo first

	fill     *Path // non-nil while a fill region is being recorded
	deferred []strokeSegment

	canvas *Canvas
}

// strokeSegment is one pen-down move buffered during a fill session,
// with the stroke style captured at draw time.
type strokeSegment struct {
	a, b  Point
	color RGBA
	width float64
}

var _ Cursor = (*Turtle)(nil)

// NewTurtle creates a detached turtle: pen down at the origin, heading
// right, angles in degrees. It records its trail but renders nothing.
func NewTurtle() *Turtle {
	return &Turtle{
		pen:      true,
		unit:     Degrees,
		trail:    NewPath(),
		needMove: true,
	}
}

// NewTurtleOnCanvas creates a turtle attached to a canvas. Pen-down moves
// are stroked onto the canvas with its current stroke style, and completed
// fill regions are filled with its fill style.
func NewTurtleOnCanvas(cv *Canvas) *Turtle {
	t := NewTurtle()
	t.canvas = cv
	return t
}

// moveTo moves the turtle to next, recording and rendering as the pen
// and fill state dictate. This is the single funnel for all movement.
func (t *Turtle) moveTo(next Point) {
	if t.pen {
		if t.needMove || !t.trail.HasCurrentPoint() {
			t.trail.MoveTo(t.pos.X, t.pos.Y)
			t.needMove = false
		}
		t.trail.LineTo(next.X, next.Y)
		if t.canvas != nil {
			seg := strokeSegment{
				a:     t.pos,
				b:     next,
				color: t.canvas.StrokeColor(),
				width: t.canvas.LineWidth(),
			}
			if t.fill != nil {
				// Strokes made while filling go on top of the
				// fill, so they wait until EndFill paints it.
				t.deferred = append(t.deferred, seg)
			} else {
				t.canvas.strokeSegment(seg)
			}
		}
	} else {
		t.needMove = true
	}
	if t.fill != nil {
		// The fill region follows every move, pen up or down. The
		// star tracer relies on this to close stellated regions.
		t.fill.LineTo(next.X, next.Y)
	}
	t.pos = next
}

// Forward moves the turtle by distance along its heading.
// A negative distance moves backward.
func (t *Turtle) Forward(distance float64) {
	dir := Pt(math.Cos(t.heading), math.Sin(t.heading))
	t.moveTo(t.pos.Add(dir.Mul(distance)))
}

// Backward moves the turtle by distance against its heading.
func (t *Turtle) Backward(distance float64) {
	t.Forward(-distance)
}

// Rotate turns the turtle in place by the given relative angle,
// counter-clockwise for positive values.
func (t *Turtle) Rotate(angle float64) {
	t.heading += t.toRadians(angle)
}

// Left turns the turtle counter-clockwise by angle.
func (t *Turtle) Left(angle float64) {
	t.Rotate(angle)
}

// Right turns the turtle clockwise by angle.
func (t *Turtle) Right(angle float64) {
	t.Rotate(-angle)
}

// Position returns the turtle's current coordinates.
func (t *Turtle) Position() (x, y float64) {
	return t.pos.X, t.pos.Y
}

// Heading returns the turtle's heading in the current angle unit,
// normalized to [0, full circle).
func (t *Turtle) Heading() float64 {
	full := 2 * math.Pi
	h := math.Mod(t.heading, full)
	if h < 0 {
		h += full
	}
	if t.unit == Degrees {
		return h * 180 / math.Pi
	}
	return h
}

// SetHeading sets the turtle's absolute heading.
func (t *Turtle) SetHeading(angle float64) {
	t.heading = t.toRadians(angle)
}

// Goto moves the turtle straight to (x, y), drawing if the pen is down.
func (t *Turtle) Goto(x, y float64) {
	t.moveTo(Pt(x, y))
}

// SetY moves the turtle vertically to the given Y coordinate,
// keeping its X, drawing if the pen is down.
func (t *Turtle) SetY(y float64) {
	t.moveTo(Pt(t.pos.X, y))
}

// Home moves the turtle to the origin and resets its heading,
// drawing if the pen is down.
func (t *Turtle) Home() {
	t.Goto(0, 0)
	t.heading = 0
}

// PenUp lifts the pen.
func (t *Turtle) PenUp() {
	t.pen = false
}

// PenDown lowers the pen.
func (t *Turtle) PenDown() {
	t.pen = true
}

// IsPenDown reports whether the pen is down.
func (t *Turtle) IsPenDown() bool {
	return t.pen
}

// SetAngleUnit switches the unit used for all angle values.
func (t *Turtle) SetAngleUnit(u AngleUnit) {
	t.unit = u
}

// AngleUnit returns the current angle unit.
func (t *Turtle) AngleUnit() AngleUnit {
	return t.unit
}

// BeginFill starts recording a fill region at the current position.
// Until EndFill, every move extends the region, whether or not the pen
// is down.
func (t *Turtle) BeginFill() {
	t.fill = NewPath()
	t.fill.MoveTo(t.pos.X, t.pos.Y)
}

// EndFill finishes the fill region and returns it. If the turtle is
// attached to a canvas, the region is filled with the canvas fill color
// and any strokes drawn during the session are painted on top of it.
// Without a matching BeginFill, EndFill returns nil.
func (t *Turtle) EndFill() *Path {
	region := t.fill
	t.fill = nil
	if region == nil {
		return nil
	}
	if t.canvas != nil {
		t.canvas.FillPath(region)
		for _, seg := range t.deferred {
			t.canvas.strokeSegment(seg)
		}
	}
	t.deferred = nil
	return region
}

// IsFilling reports whether a fill region is being recorded.
func (t *Turtle) IsFilling() bool {
	return t.fill != nil
}

// Circle traces the regular polygon inscribed in a circle of the given
// radius, approximating the circle with the given number of steps. The
// circle's center is radius units to the turtle's left, so tracing starts
// and ends at the current position, counter-clockwise for a positive
// radius. The polygon's vertices are the same circle points DrawStar
// connects.
func (t *Turtle) Circle(radius float64, steps int) {
	if steps < 1 {
		return
	}
	w := 2 * math.Pi / float64(steps)
	w2 := w / 2
	l := 2 * radius * math.Sin(w2)
	if radius < 0 {
		l, w, w2 = -l, -w, -w2
	}
	t.heading += w2
	for i := 0; i < steps; i++ {
		t.Forward(l)
		t.heading += w
	}
	t.heading -= w2
}

// Path returns the turtle's recorded trail. The returned path is live:
// further moves keep appending to it.
func (t *Turtle) Path() *Path {
	return t.trail
}

// Reset clears the trail and returns the turtle to its initial state:
// origin, heading right, pen down. The angle unit is kept. An attached
// canvas is not touched.
func (t *Turtle) Reset() {
	t.trail = NewPath()
	t.pos = Point{}
	t.heading = 0
	t.pen = true
	t.fill = nil
	t.deferred = nil
	t.needMove = true
}

// toRadians converts an angle in the current unit to radians.
func (t *Turtle) toRadians(angle float64) float64 {
	if t.unit == Degrees {
		return angle * math.Pi / 180
	}
	return angle
}
