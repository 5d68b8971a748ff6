package world

import (
	"math"

	"github.com/arcadelab/tui-meteors/internal/geom"
)

// ToPoints converts a flat x,y,x,y,... list into shape points. Used by
// entity constructors to keep shape tables readable.
func ToPoints(flat []float64) []geom.Vec {
	points := make([]geom.Vec, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		points = append(points, geom.V(flat[i], flat[i+1]))
	}
	return points
}

// Heading converts an orientation in degrees (0° = up, 90° = left) to
// a unit direction vector. The axis signs are picked by the quadrant
// the angle falls into, then the result is normalized. Used for
// velocity initialization and for generating circular outlines.
func Heading(deg float64) geom.Vec {
	y := math.Abs(math.Tan((deg - 90) * math.Pi / 180))
	x := 1.0
	if deg > 0 && deg < 180 {
		x = -1
	}
	if deg > 90 && deg < 270 {
		y = -y
	}
	return geom.V(x, y).Normalize()
}

// ChainOutline converts a ring of vertices into chained shape point
// pairs: (v0,v1), (v1,v2), ..., (vn-1,v0). Each interior vertex is
// listed twice per the shape-pair convention.
func ChainOutline(verts []geom.Vec) []geom.Vec {
	if len(verts) == 0 {
		return nil
	}
	points := make([]geom.Vec, 0, len(verts)*2)
	for i, v := range verts {
		points = append(points, v)
		if i > 0 {
			points = append(points, v)
		}
	}
	return append(points, verts[0])
}

// CirclePoints generates a unit-circle outline with n segments,
// centered in the unit square, as chained point pairs.
func CirclePoints(n int) []geom.Vec {
	interval := 360.0 / float64(n)
	verts := make([]geom.Vec, 0, n)
	for i := 0; i < n; i++ {
		p := Heading(float64(i) * interval).Div(2).Add(geom.V(0.5, 0.5))
		verts = append(verts, p)
	}
	return ChainOutline(verts)
}
