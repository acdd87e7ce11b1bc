package turtle

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestTurtleForward(t *testing.T) {
	tr := NewTurtle()
	tr.Forward(10)

	x, y := tr.Position()
	if !almostEqual(x, 10, 1e-12) || !almostEqual(y, 0, 1e-12) {
		t.Errorf("position = (%v, %v), want (10, 0)", x, y)
	}

	tr.Rotate(90)
	tr.Forward(5)
	x, y = tr.Position()
	if !almostEqual(x, 10, 1e-9) || !almostEqual(y, 5, 1e-9) {
		t.Errorf("position = (%v, %v), want (10, 5)", x, y)
	}
}

func TestTurtleBackwardLeftRight(t *testing.T) {
	tr := NewTurtle()
	tr.Left(90)
	if !almostEqual(tr.Heading(), 90, 1e-12) {
		t.Errorf("heading = %v, want 90", tr.Heading())
	}
	tr.Right(90)
	if !almostEqual(tr.Heading(), 0, 1e-12) {
		t.Errorf("heading = %v, want 0", tr.Heading())
	}

	tr.Backward(10)
	x, y := tr.Position()
	if !almostEqual(x, -10, 1e-9) || !almostEqual(y, 0, 1e-9) {
		t.Errorf("position = (%v, %v), want (-10, 0)", x, y)
	}
}

func TestTurtleHeadingNormalized(t *testing.T) {
	tr := NewTurtle()
	tr.Rotate(-90)
	if !almostEqual(tr.Heading(), 270, 1e-9) {
		t.Errorf("heading = %v, want 270", tr.Heading())
	}
	tr.Rotate(720)
	if !almostEqual(tr.Heading(), 270, 1e-9) {
		t.Errorf("heading = %v, want 270 after full turns", tr.Heading())
	}
}

func TestTurtleAngleUnits(t *testing.T) {
	tr := NewTurtle()
	if tr.AngleUnit() != Degrees {
		t.Fatalf("default angle unit = %v, want degrees", tr.AngleUnit())
	}

	tr.SetAngleUnit(Radians)
	tr.Rotate(math.Pi / 2)
	if !almostEqual(tr.Heading(), math.Pi/2, 1e-12) {
		t.Errorf("heading = %v, want pi/2", tr.Heading())
	}

	tr.SetAngleUnit(Degrees)
	if !almostEqual(tr.Heading(), 90, 1e-9) {
		t.Errorf("heading = %v, want 90 after unit switch", tr.Heading())
	}
}

func TestTurtlePenUpDown(t *testing.T) {
	tr := NewTurtle()
	tr.Forward(10)
	tr.PenUp()
	if tr.IsPenDown() {
		t.Error("pen still down after PenUp")
	}
	tr.Forward(10)
	tr.PenDown()
	tr.Forward(10)

	subs := tr.Path().Subpaths()
	if len(subs) != 2 {
		t.Fatalf("subpaths = %d, want 2 (pen-up move splits the trail)", len(subs))
	}
	if subs[0][0] != Pt(0, 0) || !almostEqual(subs[0][1].X, 10, 1e-12) {
		t.Errorf("first subpath = %v", subs[0])
	}
	if !almostEqual(subs[1][0].X, 20, 1e-12) || !almostEqual(subs[1][1].X, 30, 1e-12) {
		t.Errorf("second subpath = %v", subs[1])
	}
}

func TestTurtleGotoDraws(t *testing.T) {
	tr := NewTurtle()
	tr.Goto(3, 4)
	if got := tr.Path().Length(); !almostEqual(got, 5, 1e-12) {
		t.Errorf("trail length = %v, want 5", got)
	}

	x, y := tr.Position()
	if x != 3 || y != 4 {
		t.Errorf("position = (%v, %v), want (3, 4)", x, y)
	}
}

func TestTurtleSetYAndHome(t *testing.T) {
	tr := NewTurtle()
	tr.PenUp()
	tr.SetY(-100)
	x, y := tr.Position()
	if x != 0 || y != -100 {
		t.Errorf("position = (%v, %v), want (0, -100)", x, y)
	}

	tr.Rotate(45)
	tr.Home()
	x, y = tr.Position()
	if x != 0 || y != 0 || tr.Heading() != 0 {
		t.Errorf("after Home: position (%v, %v) heading %v", x, y, tr.Heading())
	}
}

func TestTurtleCircle(t *testing.T) {
	tr := NewTurtle()
	tr.Circle(100, 4)

	// Four chords of the inscribed square.
	want := 2 * 100 * math.Sin(math.Pi/4)
	subs := tr.Path().Subpaths()
	if len(subs) != 1 {
		t.Fatalf("subpaths = %d, want 1", len(subs))
	}
	if len(subs[0]) != 5 {
		t.Fatalf("polygon points = %d, want 5", len(subs[0]))
	}
	for i := 1; i < len(subs[0]); i++ {
		d := subs[0][i].Distance(subs[0][i-1])
		if !almostEqual(d, want, 1e-9) {
			t.Errorf("chord %d length = %v, want %v", i, d, want)
		}
	}

	// Back at the start, heading restored.
	x, y := tr.Position()
	if !almostEqual(x, 0, 1e-9) || !almostEqual(y, 0, 1e-9) {
		t.Errorf("position = (%v, %v), want origin", x, y)
	}
	h := tr.Heading()
	if !almostEqual(h, 0, 1e-9) && !almostEqual(h, 360, 1e-9) {
		t.Errorf("heading = %v, want 0", h)
	}
}

func TestTurtleCircleClockwise(t *testing.T) {
	tr := NewTurtle()
	tr.Circle(-100, 6)

	subs := tr.Path().Subpaths()
	if len(subs) != 1 {
		t.Fatalf("subpaths = %d, want 1", len(subs))
	}
	if area := signedArea(subs[0]); area >= 0 {
		t.Errorf("signed area = %v, want negative for clockwise circle", area)
	}
}

func TestTurtleFillRecordsPenUpMoves(t *testing.T) {
	tr := NewTurtle()
	tr.BeginFill()
	if !tr.IsFilling() {
		t.Fatal("IsFilling = false after BeginFill")
	}

	tr.Forward(10)
	tr.PenUp()
	tr.Forward(10)
	tr.PenDown()
	tr.Forward(10)

	region := tr.EndFill()
	if tr.IsFilling() {
		t.Error("IsFilling = true after EndFill")
	}
	if region == nil {
		t.Fatal("EndFill returned nil")
	}

	// The region follows every move, pen up or down.
	subs := region.Subpaths()
	if len(subs) != 1 {
		t.Fatalf("region subpaths = %d, want 1", len(subs))
	}
	if len(subs[0]) != 4 {
		t.Errorf("region points = %d, want 4", len(subs[0]))
	}

	// The visible trail has a gap.
	if trail := tr.Path().Subpaths(); len(trail) != 2 {
		t.Errorf("trail subpaths = %d, want 2", len(trail))
	}
}

func TestTurtleEndFillWithoutBegin(t *testing.T) {
	tr := NewTurtle()
	if region := tr.EndFill(); region != nil {
		t.Errorf("EndFill without BeginFill = %v, want nil", region)
	}
}

func TestTurtleReset(t *testing.T) {
	tr := NewTurtle()
	tr.Rotate(45)
	tr.Forward(10)
	tr.PenUp()
	tr.Reset()

	x, y := tr.Position()
	if x != 0 || y != 0 || tr.Heading() != 0 {
		t.Errorf("after Reset: position (%v, %v) heading %v", x, y, tr.Heading())
	}
	if !tr.IsPenDown() {
		t.Error("pen up after Reset")
	}
	if len(tr.Path().Elements()) != 0 {
		t.Error("trail not cleared by Reset")
	}
}

func TestTurtleOnCanvasStrokes(t *testing.T) {
	cv := NewCanvas(100, 100)
	tr := NewTurtleOnCanvas(cv)

	cv.SetStrokeColor(Red)
	cv.SetLineWidth(3)
	tr.PenUp()
	tr.Goto(-30, 0)
	tr.PenDown()
	tr.Forward(60) // horizontal line through the center

	// The canvas center maps to pixel (50, 50).
	px := cv.Pixmap().GetPixel(50, 50)
	if px.R < 0.9 || px.G > 0.1 {
		t.Errorf("center pixel = %+v, want red", px)
	}

	// Far corner untouched (white background).
	px = cv.Pixmap().GetPixel(5, 5)
	if px.R < 0.9 || px.G < 0.9 || px.B < 0.9 {
		t.Errorf("corner pixel = %+v, want white", px)
	}
}

func TestTurtleOnCanvasFill(t *testing.T) {
	cv := NewCanvas(100, 100)
	tr := NewTurtleOnCanvas(cv)
	cv.SetColors(Black, Yellow)
	cv.SetLineWidth(3)

	tr.PenUp()
	tr.Goto(-20, -20)
	tr.PenDown()
	tr.BeginFill()
	for i := 0; i < 4; i++ {
		tr.Forward(40)
		tr.Left(90)
	}
	tr.EndFill()

	// Inside the square: yellow fill.
	px := cv.Pixmap().GetPixel(50, 50)
	if px.R < 0.9 || px.G < 0.9 || px.B > 0.1 {
		t.Errorf("center pixel = %+v, want yellow", px)
	}

	// The square's border: black stroke painted over the fill.
	px = cv.Pixmap().GetPixel(50, 70)
	if px.R > 0.3 || px.G > 0.3 || px.B > 0.3 {
		t.Errorf("border pixel = %+v, want black stroke", px)
	}
}
