package turtle

import (
	"errors"
	"fmt"
	"math"
)

// ErrConflictingOptions is returned when both WithStep and WithEdgeLength
// are supplied to DrawStar. At most one may be given.
var ErrConflictingOptions = errors.New("turtle: star step and edge length are mutually exclusive")

// VertexCountError is returned when a star has fewer than 3 vertices.
// The angle derivation divides by the vertex count, so smaller figures
// are rejected instead of producing degenerate geometry.
type VertexCountError struct {
	Vertices int
}

func (e *VertexCountError) Error() string {
	return fmt.Sprintf("turtle: star needs at least 3 vertices, got %d", e.Vertices)
}

// StepError is returned when the step magnitude is outside [1, vertices-1].
type StepError struct {
	Step     int // the step as supplied by the caller
	Vertices int
}

func (e *StepError) Error() string {
	return fmt.Sprintf("turtle: star step %d out of range for %d vertices (magnitude must be in [1, %d])",
		e.Step, e.Vertices, e.Vertices-1)
}

// EdgeLengthError is returned when a supplied edge length is below the
// minimum chord bound. Min carries the smallest length that succeeds,
// so the caller can retry.
type EdgeLengthError struct {
	EdgeLength float64
	Min        float64
}

func (e *EdgeLengthError) Error() string {
	return fmt.Sprintf("turtle: star edge length %.2f too short, must be at least %.2f",
		e.EdgeLength, e.Min)
}

// StarMode identifies how a star figure is traced.
type StarMode int

const (
	// StarInternal traces the self-intersecting star {n/m} with its
	// interior chords, the way a five-point star is drawn by hand.
	StarInternal StarMode = iota

	// StarHullComputed traces only the outer hull of {n/m}; the point
	// edge length is derived from the radius and step.
	StarHullComputed

	// StarHullGiven traces only the outer hull with a caller-supplied
	// point edge length.
	StarHullGiven
)

// String returns the mode name.
func (m StarMode) String() string {
	switch m {
	case StarInternal:
		return "internal"
	case StarHullComputed:
		return "hull-computed"
	case StarHullGiven:
		return "hull-given"
	}
	return "unknown"
}

// Direction is the winding direction of a traced figure.
type Direction int

const (
	// CCW winds counter-clockwise (positive radius).
	CCW Direction = iota

	// CW winds clockwise (negative radius).
	CW
)

// String returns the direction name.
func (d Direction) String() string {
	if d == CW {
		return "cw"
	}
	return "ccw"
}

// StarOption configures DrawStar.
type StarOption func(*starOptions)

// starOptions holds the optional step / edge-length selection.
type starOptions struct {
	step    int
	hasStep bool
	edgeLen float64
	hasEdge bool
}

// WithStep selects the vertex step m of the star polygon {n/m}.
//
// A non-negative step traces the self-intersecting figure with its
// interior chords. A negative step traces only the outer hull of
// {n/-m}: each star point is drawn as two edges forming a "\/", with
// no crossing lines.
func WithStep(m int) StarOption {
	return func(o *starOptions) {
		o.step = m
		o.hasStep = true
	}
}

// WithEdgeLength selects the length of the two edges forming each star
// point. This implies hull-only tracing and excludes WithStep.
func WithEdgeLength(u float64) StarOption {
	return func(o *starOptions) {
		o.edgeLen = u
		o.hasEdge = true
	}
}

// starGeometry holds the constants the emitter walks. All angles are in
// radians; lengths are in the same unit as the radius. Which fields are
// populated depends on the mode.
type starGeometry struct {
	mode StarMode
	dir  Direction

	n int // vertex count
	m int // step magnitude after mirroring
	d int // gcd(n, m); number of stellation sub-polygons (internal mode)

	alpha float64 // central angle between adjacent circle vertices
	beta  float64 // stellation seam half-turn (internal mode)
	gamma float64 // turn between interior chords (internal mode)
	delta float64 // interior angle of the convex polygon {n}
	theta float64 // hull point opening angle (hull modes)
	sigma float64 // hull notch angle (hull modes)

	s float64 // chord between adjacent circle vertices
	t float64 // interior chord length (internal mode)
	u float64 // hull point edge length (hull modes)
}

// resolveStar turns (radius, vertices, options) into the constants used
// for tracing. It is pure: all validation happens here, before any
// cursor is touched.
func resolveStar(radius float64, vertices int, opt starOptions) (starGeometry, error) {
	if opt.hasStep && opt.hasEdge {
		return starGeometry{}, ErrConflictingOptions
	}
	if vertices < 3 {
		return starGeometry{}, &VertexCountError{Vertices: vertices}
	}

	n := vertices
	r := radius

	var g starGeometry
	g.n = n

	switch {
	case opt.hasEdge:
		g.mode = StarHullGiven
	case opt.hasStep:
		if opt.step >= 0 {
			g.mode = StarInternal
			g.m = opt.step
		} else {
			g.mode = StarHullComputed
			g.m = -opt.step
		}
		if g.m < 1 || g.m > n-1 {
			return starGeometry{}, &StepError{Step: opt.step, Vertices: n}
		}
		// Mirroring m > n/2 and flipping the winding via the radius
		// keeps every formula below uniform.
		if g.mode == StarHullComputed && float64(g.m) > float64(n)/2 {
			g.m = n - g.m
			r = -r
		}
	default:
		g.mode = StarInternal
		g.m = max(1, (n-1)/2)
	}

	sgn := 1.0
	g.dir = CCW
	if r < 0 {
		sgn = -1.0
		g.dir = CW
	}

	tau := 2 * math.Pi
	fn := float64(n)
	fm := float64(g.m)

	switch g.mode {
	case StarInternal:
		g.alpha = sgn * tau / fn
		g.beta = g.alpha * (fm + 1) / 2
		g.gamma = g.alpha * fm
		g.delta = sgn * (fn - 2) / fn * math.Pi
		g.s = 2 * r * math.Sin(g.alpha/2)
		g.t = 2 * r * math.Sin(g.gamma/2)
		g.d = gcd(n, g.m)

	case StarHullComputed:
		g.alpha = sgn * tau / fn
		g.gamma = g.alpha * fm
		g.delta = sgn * (fn - 2) / fn * math.Pi
		g.theta = math.Pi - g.gamma
		rho := (g.delta - g.theta) / 2
		lambda := math.Pi - (g.alpha+g.theta)/2
		g.sigma = math.Pi - 2*rho
		g.u = math.Sin(g.alpha/2) * r / math.Sin(lambda)

	case StarHullGiven:
		r = sgn * r
		g.alpha = sgn * tau / fn
		g.delta = sgn * (fn - 2) / fn * math.Pi
		g.s = 2 * r * math.Sin(g.alpha/2)
		g.u = opt.edgeLen
		// The acos below needs |s/(2u)| <= 1; using |s| keeps the
		// bound meaningful for clockwise figures too.
		min := math.Abs(g.s) / 2
		if g.u <= 0 || g.u < min {
			return starGeometry{}, &EdgeLengthError{EdgeLength: g.u, Min: min}
		}
		rho := math.Acos(g.s / (2 * g.u))
		g.theta = g.delta - 2*rho
		g.sigma = math.Pi - 2*rho
	}

	return g, nil
}

// gcd returns the greatest common divisor of two positive integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
