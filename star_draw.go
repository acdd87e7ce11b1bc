package turtle

import "math"

// DrawStar traces the regular star polygon {vertices/step} inscribed in a
// circle of the given radius, driving the cursor with forward and rotate
// commands. The figure starts at the cursor's current position, and the
// cursor's position, heading and angle unit are restored when the call
// returns.
//
// A positive radius traces counter-clockwise, a negative radius clockwise,
// mirroring the usual circular-arc convention. With no options the step
// defaults to max(1, (vertices-1)/2). See WithStep and WithEdgeLength for
// the hull-only variants.
//
// When vertices and step are not coprime, the figure decomposes into
// gcd(vertices, step) disjoint sub-polygons (stellation): the hexagram
// {6/2} becomes two triangles, {12/3} three squares. The seams between
// sub-polygons are jumped with the pen lifted.
//
// If the cursor reports it is filling, an extra pen-up walk back to the
// true closing vertex is emitted after the visible path, so that fill
// rasterization closes correctly for stellated figures.
//
// Validation errors (ErrConflictingOptions, VertexCountError, StepError,
// EdgeLengthError) are returned before the cursor is touched; the cursor
// is never left partially drawn.
func DrawStar(c Cursor, radius float64, vertices int, opts ...StarOption) error {
	var o starOptions
	for _, opt := range opts {
		opt(&o)
	}

	g, err := resolveStar(radius, vertices, o)
	if err != nil {
		return err
	}

	Logger().Debug("star geometry resolved",
		"mode", g.mode.String(),
		"direction", g.dir.String(),
		"vertices", g.n,
		"step", g.m,
		"subpolygons", g.d,
	)

	emitStar(c, g)
	return nil
}

// emitStar walks the resolved constants and issues the pen movements.
// The cursor's angle unit is switched to radians for the duration of the
// trace; unit, position and heading are restored before returning.
func emitStar(c Cursor, g starGeometry) {
	orient := c.Heading()
	posX, posY := c.Position()
	unit := c.AngleUnit()
	c.SetAngleUnit(Radians)

	switch g.mode {
	case StarInternal:
		emitInternal(c, g)
	default:
		emitHull(c, g)
	}

	// The saved heading was read in the caller's unit, so the unit must
	// come back before the heading does.
	c.SetAngleUnit(unit)

	c.PenUp()
	c.Goto(posX, posY)
	c.PenDown()
	c.SetHeading(orient)
}

// emitInternal traces the self-intersecting figure chord by chord.
// Every n/d-th iteration is a stellation seam: instead of turning onto
// the next chord, the cursor jumps (pen up) along the circle to the
// starting vertex of the next sub-polygon.
func emitInternal(c Cursor, g starGeometry) {
	n1 := g.n / g.d

	c.Rotate(-g.gamma / 2)
	for i := 0; i < g.n; i++ {
		if i > 0 && i%n1 == 0 {
			c.Rotate(g.beta)
			c.PenUp()
			c.Forward(g.s)
			c.PenDown()
			c.Rotate(g.beta)
		} else {
			c.Rotate(g.gamma)
		}
		c.Forward(g.t)
	}

	if c.IsFilling() {
		// The visible stroke already returned to the start, but a
		// stellated fill region closes at the last sub-polygon's
		// origin. Walk back along the circle so the region closes
		// where it began.
		c.PenUp()
		c.Rotate(g.beta + g.delta)
		for i := 0; i < g.d-1; i++ {
			c.Forward(g.s)
			c.Rotate(-g.alpha)
		}
		c.PenDown()
	}
}

// emitHull traces the outer hull: each iteration draws one "\/" star
// point and turns toward the next.
func emitHull(c Cursor, g starGeometry) {
	c.Rotate((math.Pi - g.theta) / 2)
	for i := 0; i < g.n; i++ {
		c.Forward(g.u)
		c.Rotate(g.sigma - math.Pi)
		c.Forward(g.u)
		c.Rotate(math.Pi - g.theta)
	}
}
