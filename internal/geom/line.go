package geom

// DefaultNudge is the offset applied to repair a degenerate segment
// whose endpoints are bit-identical. Tuned for the 640×480 world scale;
// revisit via NewLineNudged if the coordinate scale ever changes.
const DefaultNudge = 0.1

// Line is a segment between two distinct points.
type Line struct {
	Start, End Vec
}

// NewLine builds a segment. If the endpoints are exactly identical
// (happens on rare frames, e.g. a stationary point at the origin) the
// start is nudged so slope and intersection math never see a point.
func NewLine(start, end Vec) Line {
	return NewLineNudged(start, end, DefaultNudge)
}

// NewLineNudged is NewLine with an explicit degeneracy repair offset.
func NewLineNudged(start, end Vec, nudge float64) Line {
	if start.X == end.X && start.Y == end.Y {
		start.X += nudge
		start.Y += nudge
	}
	return Line{Start: start, End: end}
}

// Slope returns the segment slope, false when vertical.
func (l Line) Slope() (float64, bool) {
	return l.End.Sub(l.Start).Slope()
}

// ABC expresses the infinite line through the segment as Ax + By = C.
func (l Line) ABC() (a, b, c float64) {
	a = l.End.Y - l.Start.Y
	b = l.Start.X - l.End.X
	c = a*l.Start.X + b*l.Start.Y
	return a, b, c
}

// IntersectionPoint returns the intersection of the infinite lines
// through l and o. Parallel (or coincident) lines have no unique
// intersection and return false. The determinant is compared to exact
// zero on purpose.
func (l Line) IntersectionPoint(o Line) (Vec, bool) {
	a1, b1, c1 := l.ABC()
	a2, b2, c2 := o.ABC()
	det := a1*b2 - a2*b1
	if det == 0 {
		return Vec{}, false
	}
	return Vec{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}, true
}

// Within reports whether p lies inside the axis-aligned box spanned by
// the segment endpoints. Axes on which the segment is degenerate use
// the Near tolerance so a boundary-touching point is not lost to
// round-off; other axes use a strict open interval.
func (l Line) Within(p Vec) bool {
	var cx, cy bool
	if Near(l.Start.X, l.End.X) {
		cx = Near(p.X, l.Start.X)
	} else {
		cx = p.X < max(l.Start.X, l.End.X) && p.X > min(l.Start.X, l.End.X)
	}
	if Near(l.Start.Y, l.End.Y) {
		cy = Near(p.Y, l.Start.Y)
	} else {
		cy = p.Y < max(l.Start.Y, l.End.Y) && p.Y > min(l.Start.Y, l.End.Y)
	}
	return cx && cy
}

// Intersects reports whether the two segments truly cross: the
// infinite-line intersection exists and sits within both segments'
// boxes. Parallel segments never intersect.
func (l Line) Intersects(o Line) bool {
	p, ok := l.IntersectionPoint(o)
	if !ok {
		return false
	}
	return l.Within(p) && o.Within(p)
}
