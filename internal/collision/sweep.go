package collision

import "github.com/arcadelab/tui-meteors/internal/geom"

// SweptHit approximates continuous collision from discrete samples:
// the path segment between a point's previous and current positions is
// tested against each outline segment of the target shape. One
// historical sample, not exact time-of-impact solving.
func SweptHit(path geom.Line, outline []geom.Line) bool {
	for _, seg := range outline {
		if seg.Intersects(path) {
			return true
		}
	}
	return false
}
