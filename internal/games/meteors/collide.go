package meteors

import (
	"fmt"

	"github.com/arcadelab/tui-meteors/internal/collision"
	"github.com/arcadelab/tui-meteors/internal/geom"
)

// buildCollider constructs the collision registry: one detector and
// handler pair per (ship, tier) and (bullet, tier) combination. Every
// tier gets its own registration so destruction consequences (score,
// splitting, level completion) dispatch without type switches in the
// handlers.
func buildCollider(g *Game) (*collision.Registry, error) {
	reg := collision.NewRegistry()
	for tier := range g.cfg.Meteors {
		mk := MeteorKind(tier)
		if err := reg.Register(KindShip, mk, g.detectShipMeteor, g.handleShipMeteor); err != nil {
			return nil, fmt.Errorf("meteors: register ship/tier %d: %w", tier, err)
		}
		if err := reg.Register(KindBullet, mk, g.detectBulletMeteor, g.handleBulletMeteor); err != nil {
			return nil, fmt.Errorf("meteors: register bullet/tier %d: %w", tier, err)
		}
	}
	return reg, nil
}

// detectShipMeteor reports whether any vertex of the ship has swept
// into the meteor. A vertex inside the meteor's bounding circle is
// tested exactly: the segment from the vertex's lagged position to its
// current one must cross the meteor outline.
func (g *Game) detectShipMeteor(a, b collision.Object) bool {
	ship := a.(*Ship)
	meteor := b.(*Meteor)

	circle := meteor.BoundingCircle()
	outline := meteor.Lines()
	lag := g.cfg.Collision.SweepLag
	nudge := g.cfg.Collision.DegenerateNudge

	for i, p := range ship.TransformedPoints() {
		if !circle.Contains(p) {
			continue
		}
		path := geom.NewLineNudged(ship.PointAt(i, lag), p, nudge)
		if collision.SweptHit(path, outline) {
			return true
		}
	}
	return false
}

// detectBulletMeteor reports whether the bullet's flight path since
// the previous update crosses the meteor outline. The bounding circle
// gates the exact test.
func (g *Game) detectBulletMeteor(a, b collision.Object) bool {
	bullet := a.(*Bullet)
	meteor := b.(*Meteor)

	if !meteor.BoundingCircle().Contains(bullet.Pos) {
		return false
	}
	path := geom.NewLineNudged(bullet.PosAt(1), bullet.Pos, g.cfg.Collision.DegenerateNudge)
	return collision.SweptHit(path, meteor.Lines())
}

func (g *Game) handleShipMeteor(a, _ collision.Object) {
	if g.practice {
		return
	}
	a.(*Ship).Hit()
}

// handleBulletMeteor spends the bullet and damages the meteor. A
// destroyed meteor scores (tier value times current level) and splits
// into the next tier; destroying the last meteor queues the level
// transition.
func (g *Game) handleBulletMeteor(a, b collision.Object) {
	bullet := a.(*Bullet)
	meteor := b.(*Meteor)

	bullet.Hit()
	meteor.Hit()
	if !meteor.Remove {
		return
	}

	g.addScore(g.cfg.Meteors[meteor.Tier()].Score)
	g.splitMeteor(meteor)
	if g.aliveMeteors() == 0 {
		g.levelCleared = true
	}
}
