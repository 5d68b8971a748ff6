// Package world provides the spatial-transform component shared by all
// game entities: a body with position, orientation, size and anchor,
// a unit-square local shape, and fixed-depth history buffers of prior
// positions and orientations used for swept collision tests.
package world

import (
	"math"

	"github.com/arcadelab/tui-meteors/internal/geom"
)

// DefaultHistoryDepth is how many past position/orientation samples a
// body keeps.
const DefaultHistoryDepth = 5

// Body is the transformable state of a world entity.
//
// Shape points live in the unit square [0,1]² and are expressed as
// consecutive pairs (2i, 2i+1) defining line segments; to chain
// segments visually, a shared vertex must be listed twice. The anchor
// is the normalized pivot inside the unit square about which the shape
// scales and rotates; it is also the point placed at Pos.
//
// Orientation is in degrees with 0° pointing up and 90° pointing left.
// Gameplay turn directions depend on this convention.
type Body struct {
	Pos    geom.Vec
	Deg    float64
	Vel    geom.Vec
	Size   geom.Vec
	Anchor geom.Vec
	Points []geom.Vec
	Remove bool

	lastPos *Lag[geom.Vec]
	lastDeg *Lag[float64]
}

// NewBody creates a body with unit size, a centered anchor and the
// given history depth (DefaultHistoryDepth if depth <= 0).
func NewBody(depth int) *Body {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	b := &Body{
		Size:   geom.V(1, 1),
		Anchor: geom.V(0.5, 0.5),
	}
	b.lastPos = NewLag(depth, geom.Vec{})
	b.lastDeg = NewLag(depth, 0.0)
	return b
}

// InitPos sets the position and floods the history with it, so every
// lag slot reports the starting position until real updates arrive.
func (b *Body) InitPos(p geom.Vec) {
	b.Pos = p
	b.lastPos.Fill(p)
}

// SetPos pushes the current position into the history and assigns the
// new one. The history is a lag buffer of prior states, never the
// current one.
func (b *Body) SetPos(p geom.Vec) {
	b.lastPos.Push(b.Pos)
	b.Pos = p
}

// InitDeg sets the orientation and floods the history with it.
func (b *Body) InitDeg(deg float64) {
	b.Deg = deg
	b.lastDeg.Fill(deg)
}

// SetDeg pushes the current orientation into the history and assigns
// the new one.
func (b *Body) SetDeg(deg float64) {
	b.lastDeg.Push(b.Deg)
	b.Deg = deg
}

// HistoryDepth returns the lag buffer depth.
func (b *Body) HistoryDepth() int {
	return b.lastPos.Depth()
}

// PosAt returns the position lag updates ago (0 = current). The lag
// wraps modulo the buffer depth.
func (b *Body) PosAt(lag int) geom.Vec {
	lag %= b.lastPos.Depth()
	if lag == 0 {
		return b.Pos
	}
	return b.lastPos.At(lag - 1)
}

// DegAt returns the orientation lag updates ago (0 = current).
func (b *Body) DegAt(lag int) float64 {
	lag %= b.lastDeg.Depth()
	if lag == 0 {
		return b.Deg
	}
	return b.lastDeg.At(lag - 1)
}

// PosChange returns the positional change since lag updates ago.
func (b *Body) PosChange(lag int) geom.Vec {
	lag %= b.lastPos.Depth()
	return b.Pos.Sub(b.lastPos.At(lag))
}

// PointAt transforms local point i into world space: translate by
// -anchor, scale componentwise, rotate by the (possibly lagged)
// orientation, translate by the (possibly lagged) position.
func (b *Body) PointAt(i, lag int) geom.Vec {
	p := b.Points[i].Sub(b.Anchor)
	p.X *= b.Size.X
	p.Y *= b.Size.Y

	rad := b.DegAt(lag) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	p = geom.V(p.X*cos-p.Y*sin, p.X*sin+p.Y*cos)

	return p.Add(b.PosAt(lag))
}

// PointsAt transforms every local point, lag updates ago.
func (b *Body) PointsAt(lag int) []geom.Vec {
	out := make([]geom.Vec, len(b.Points))
	for i := range b.Points {
		out[i] = b.PointAt(i, lag)
	}
	return out
}

// TransformedPoints transforms every local point at the current state.
func (b *Body) TransformedPoints() []geom.Vec {
	return b.PointsAt(0)
}

// Lines returns the world-space segments defined by the current
// transformed point pairs.
func (b *Body) Lines() []geom.Line {
	lines := make([]geom.Line, 0, len(b.Points)/2)
	for i := 0; i < len(b.Points)/2; i++ {
		p1 := b.PointAt(i*2, 0)
		p2 := b.PointAt(i*2+1, 0)
		lines = append(lines, geom.NewLine(p1, p2))
	}
	return lines
}
