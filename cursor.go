package turtle

// AngleUnit selects how a cursor interprets angle values.
type AngleUnit int

const (
	// Degrees interprets angles in degrees (the classic turtle default).
	Degrees AngleUnit = iota

	// Radians interprets angles in radians.
	Radians
)

// String returns the unit name.
func (u AngleUnit) String() string {
	if u == Radians {
		return "radians"
	}
	return "degrees"
}

// Cursor is the minimal pen-like collaborator DrawStar draws through.
//
// Angles passed to Rotate and SetHeading, and returned by Heading, are
// interpreted in the cursor's current angle unit. Positive rotation is
// counter-clockwise. The cursor owns all rendering concerns; the planner
// only borrows it for the duration of a call and restores position,
// heading and angle unit before returning.
type Cursor interface {
	// Forward moves the cursor by distance along its heading,
	// drawing if the pen is down.
	Forward(distance float64)

	// Rotate turns the cursor in place by the given relative angle.
	Rotate(angle float64)

	// Position returns the cursor's current coordinates.
	Position() (x, y float64)

	// Heading returns the cursor's current heading.
	Heading() float64

	// SetHeading sets the cursor's absolute heading.
	SetHeading(angle float64)

	// Goto moves the cursor straight to (x, y), drawing if the pen is down.
	Goto(x, y float64)

	// PenUp lifts the pen: subsequent moves do not draw.
	PenUp()

	// PenDown lowers the pen: subsequent moves draw.
	PenDown()

	// IsFilling reports whether a fill region is being recorded.
	IsFilling() bool

	// SetAngleUnit switches the unit used for all angle values.
	SetAngleUnit(u AngleUnit)

	// AngleUnit returns the current angle unit.
	AngleUnit() AngleUnit
}
