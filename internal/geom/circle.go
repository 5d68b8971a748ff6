package geom

// Circle is a bounding circle. It is derived from an entity's current
// position and size per query, never stored.
type Circle struct {
	Center Vec
	Radius float64
}

// Contains reports whether p is strictly inside the circle, comparing
// squared distance against Radius² to avoid the square root.
func (c Circle) Contains(p Vec) bool {
	return p.Sub(c.Center).MagSq() < c.Radius*c.Radius
}
