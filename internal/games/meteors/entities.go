package meteors

import (
	"math"
	"math/rand"

	"github.com/arcadelab/tui-meteors/internal/collision"
	"github.com/arcadelab/tui-meteors/internal/config"
	"github.com/arcadelab/tui-meteors/internal/core"
	"github.com/arcadelab/tui-meteors/internal/geom"
	"github.com/arcadelab/tui-meteors/internal/world"
)

// Collision kinds. Each meteor tier gets its own kind so the registry
// can dispatch per-tier detector/handler pairs.
const (
	KindShip collision.Kind = iota
	KindBullet
	kindMeteorBase
)

// MeteorKind returns the collision kind for a meteor tier.
func MeteorKind(tier int) collision.Kind {
	return kindMeteorBase + collision.Kind(tier)
}

// wrap maps x into [0, m) the way a positive modulo would.
func wrap(x, m float64) float64 {
	v := math.Mod(x, m)
	if v < 0 {
		v += m
	}
	return v
}

// Ship is the player entity. It accelerates along its heading and
// wraps around the world edges.
type Ship struct {
	*world.Body

	accel     float64 // world units per second²
	turnSpeed float64 // degrees per second
}

// NewShip creates the player ship at the given position, pointing up.
func NewShip(cfg *config.MeteorsConfig, pos geom.Vec) *Ship {
	s := &Ship{
		Body:      world.NewBody(cfg.Collision.HistoryDepth),
		accel:     cfg.Ship.Accel,
		turnSpeed: cfg.Ship.TurnSpeed,
	}
	s.Size = geom.V(cfg.Ship.Width, cfg.Ship.Height)
	s.Points = shipPoints()
	s.InitPos(pos)
	s.InitDeg(0)
	return s
}

// Kind implements collision.Object.
func (s *Ship) Kind() collision.Kind { return KindShip }

// Removed implements collision.Object.
func (s *Ship) Removed() bool { return s.Remove }

// Hit marks the ship destroyed.
func (s *Ship) Hit() { s.Remove = true }

// Update advances the ship by dt seconds. turn is +1 for left, -1 for
// right; thrust is +1 for forward, -1 for back (0 means no input).
// The ship wraps around the world edges.
func (s *Ship) Update(dt float64, bounds geom.Vec, turn, thrust int) {
	if thrust != 0 {
		added := world.Heading(s.Deg).Scale(s.accel * dt * float64(thrust))
		s.Vel = s.Vel.Add(added)
	}

	if turn != 0 {
		s.SetDeg(wrap(s.Deg+s.turnSpeed*dt*float64(turn), 360))
	}

	pos := s.Pos.Add(s.Vel.Scale(dt))
	pos.X = wrap(pos.X, bounds.X)
	pos.Y = wrap(pos.Y, bounds.Y)
	s.SetPos(pos)
}

// Muzzle returns the point bullets spawn at: half a ship length ahead
// of the ship's center along its heading.
func (s *Ship) Muzzle() geom.Vec {
	return s.Pos.Add(world.Heading(s.Deg).Scale(s.Size.Y / 2))
}

// Bullet is a gun projectile. It flies in a straight line and is
// removed once it leaves the world.
type Bullet struct {
	*world.Body
}

// NewBullet creates a bullet at pos flying along deg.
func NewBullet(cfg *config.MeteorsConfig, pos geom.Vec, deg float64) *Bullet {
	b := &Bullet{Body: world.NewBody(cfg.Collision.HistoryDepth)}
	b.Size = geom.V(cfg.Bullet.Width, cfg.Bullet.Height)
	b.Points = bulletPoints()
	b.Vel = world.Heading(deg).Scale(cfg.Bullet.Speed)
	b.InitPos(pos)
	b.InitDeg(deg)
	return b
}

// Kind implements collision.Object.
func (b *Bullet) Kind() collision.Kind { return KindBullet }

// Removed implements collision.Object.
func (b *Bullet) Removed() bool { return b.Remove }

// Hit marks the bullet spent.
func (b *Bullet) Hit() { b.Remove = true }

// Update advances the bullet by dt seconds and flags it for removal
// once off the world.
func (b *Bullet) Update(dt float64, bounds geom.Vec) {
	b.SetPos(b.Pos.Add(b.Vel.Scale(dt)))
	if b.Pos.X < 0 || b.Pos.X > bounds.X || b.Pos.Y < 0 || b.Pos.Y > bounds.Y {
		b.Remove = true
	}
}

// Meteor is a tumbling obstacle. Destroying one of a non-final tier
// splits it into smaller meteors of the next tier.
type Meteor struct {
	*world.Body

	tier      int
	turnSpeed float64 // degrees per second, randomized per meteor
	health    int
	maxHealth int
}

// NewMeteor creates a meteor of the given tier at pos, flying along
// deg. The outline and spin rate are drawn from rng.
func NewMeteor(cfg *config.MeteorsConfig, tier int, pos geom.Vec, deg float64, rng *rand.Rand) *Meteor {
	tc := cfg.Meteors[tier]
	m := &Meteor{
		Body:      world.NewBody(cfg.Collision.HistoryDepth),
		tier:      tier,
		turnSpeed: rng.Float64()*40 - 20,
		health:    tc.Health,
		maxHealth: tc.Health,
	}
	m.Size = geom.V(tc.Size, tc.Size)
	m.Points = meteorOutline(rng, tc.OutlinePoints)
	m.Vel = world.Heading(deg).Scale(cfg.MeteorSpeed(tier))
	m.InitPos(pos)
	m.InitDeg(0)
	return m
}

// Kind implements collision.Object.
func (m *Meteor) Kind() collision.Kind { return MeteorKind(m.tier) }

// Removed implements collision.Object.
func (m *Meteor) Removed() bool { return m.Remove }

// Tier returns the meteor's size class (0 = largest).
func (m *Meteor) Tier() int { return m.tier }

// BoundingCircle returns the broad-phase circle used before running
// the exact segment tests.
func (m *Meteor) BoundingCircle() geom.Circle {
	return geom.Circle{Center: m.Pos, Radius: m.Size.X / 2}
}

// Hit takes one point of damage and flags the meteor for removal at
// zero health.
func (m *Meteor) Hit() {
	m.health--
	if m.health == 0 {
		m.Remove = true
	}
}

// Color reports the damage ramp: full health renders white, then
// yellow and orange as damage accumulates, and one remaining hit
// renders red.
func (m *Meteor) Color() core.Color {
	h := float64(m.health-1) / float64(m.maxHealth-1)
	switch {
	case h >= 1:
		return core.ColorWhite
	case h > 0.5:
		return core.ColorYellow
	case h > 0.25:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

// Update advances the meteor by dt seconds. Meteors drift fully off
// an edge before reappearing at the opposite one.
func (m *Meteor) Update(dt float64, bounds geom.Vec) {
	m.SetDeg(m.Deg + m.turnSpeed*dt)

	pos := m.Pos.Add(m.Vel.Scale(dt))
	if pos.X < -m.Size.X/2 {
		pos.X += 1.5*m.Size.X + bounds.X
	}
	if pos.X > bounds.X+m.Size.X {
		pos.X -= 1.5*m.Size.X + bounds.X
	}
	if pos.Y < -m.Size.Y {
		pos.Y += 1.5*m.Size.Y + bounds.Y
	}
	if pos.Y > bounds.Y+m.Size.Y {
		pos.Y -= 1.5*m.Size.Y + bounds.Y
	}
	m.SetPos(pos)
}
