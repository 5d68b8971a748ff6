package meteors

import (
	"math/rand"

	"github.com/arcadelab/tui-meteors/internal/geom"
	"github.com/arcadelab/tui-meteors/internal/world"
)

// shipPoints returns the ship outline: an arrowhead with a notched
// tail, nose at the top of the unit square.
func shipPoints() []geom.Vec {
	return world.ToPoints([]float64{
		0.5, 1, 1, 0,
		1, 0, 0.5, 0.2,
		0.5, 0.2, 0, 0,
		0, 0, 0.5, 1,
	})
}

// bulletPoints returns the bullet outline: a narrow triangle.
func bulletPoints() []geom.Vec {
	return world.ToPoints([]float64{
		0, 0, 0.5, 1,
		0.5, 1, 1, 0,
		1, 0, 0, 0,
	})
}

// meteorOutline generates a jagged closed outline with n vertices.
// Each vertex sits at a uniform angle around the unit-square center,
// at a radius drawn from [0.35, 0.5), so every meteor is a different
// lumpy circle that still fits its bounding circle.
func meteorOutline(rng *rand.Rand, n int) []geom.Vec {
	interval := 360.0 / float64(n)
	verts := make([]geom.Vec, 0, n)
	for i := 0; i < n; i++ {
		length := (0.7 + rng.Float64()*0.3) / 2
		p := world.Heading(float64(i) * interval).Scale(length).Add(geom.V(0.5, 0.5))
		verts = append(verts, p)
	}
	return world.ChainOutline(verts)
}
