// Package meteors implements an asteroids-style game: a ship that
// turns and thrusts through a wrapping world, shooting tumbling
// meteors that split into smaller ones until the field is cleared.
//
// The simulation runs in a fixed world coordinate space (640×480 by
// default) with y pointing up; the renderer scales it to the terminal.
package meteors

import (
	"math/rand"
	"time"

	"github.com/arcadelab/tui-meteors/internal/collision"
	"github.com/arcadelab/tui-meteors/internal/config"
	"github.com/arcadelab/tui-meteors/internal/core"
	"github.com/arcadelab/tui-meteors/internal/geom"
	"github.com/arcadelab/tui-meteors/internal/registry"
)

func init() {
	registry.Register("meteors", func() registry.Game {
		return New(loadConfig())
	})
	registry.Register("meteors-practice", func() registry.Game {
		return NewPractice(loadConfig())
	})
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset name set via CLI
var difficultyPreset string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on creation.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// loadConfig resolves the game configuration: custom path if set,
// falling back to the embedded defaults on any load error.
func loadConfig() config.MeteorsConfig {
	cfg, err := config.LoadMeteors(configPath)
	if err != nil {
		cfg = config.DefaultMeteorsConfig()
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	return cfg
}

// phase is the coarse game state: which screen is showing and whether
// the simulation is running.
type phase int

const (
	phaseStart phase = iota
	phasePlay
	phaseLevel
	phaseGameOver
)

// spawnAttempts bounds the rejection sampling for meteor placement.
// A crowded field stops searching rather than spinning.
const spawnAttempts = 100

// Game implements the meteors game logic.
type Game struct {
	cfg      *config.MeteorsConfig
	practice bool // ship cannot be destroyed

	rt       core.RuntimeConfig
	rng      *rand.Rand
	collider *collision.Registry
	dt       float64  // seconds per tick
	bounds   geom.Vec // world size

	phase        phase
	score        int
	level        int
	paused       bool
	levelCleared bool

	ship    *Ship
	bullet  *Bullet // at most one live bullet
	meteors []*Meteor
}

// New creates a meteors game with the given configuration. Panics if
// the configuration produces conflicting collision registrations,
// which is a programming error.
func New(cfg config.MeteorsConfig) *Game {
	g := &Game{cfg: &cfg, level: 1}
	collider, err := buildCollider(g)
	if err != nil {
		panic(err)
	}
	g.collider = collider
	return g
}

// NewPractice creates a variant whose ship survives meteor hits.
func NewPractice(cfg config.MeteorsConfig) *Game {
	g := New(cfg)
	g.practice = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.practice {
		return "meteors-practice"
	}
	return "meteors"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.practice {
		return "Meteors (Practice)"
	}
	return "Meteors"
}

// Reset initializes or restarts the game, showing the start screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	g.rt = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.dt = 1.0 / float64(rc.TickRate)
	g.bounds = geom.V(g.cfg.World.Width, g.cfg.World.Height)

	g.phase = phaseStart
	g.score = 0
	g.level = 1
	g.paused = false
	g.levelCleared = false
	g.ship = nil
	g.bullet = nil
	g.meteors = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case phaseStart:
		if in.Has(core.ActionConfirm) {
			g.startRun()
		}
	case phaseLevel:
		if in.Has(core.ActionConfirm) {
			g.startLevel()
		}
	case phaseGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.startRun()
		}
	case phasePlay:
		g.stepPlay(in)
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == phaseGameOver,
		Paused:   g.paused,
	}
}

// startRun begins a fresh run from level one.
func (g *Game) startRun() {
	g.score = 0
	g.level = 1
	g.startLevel()
}

// startLevel enters play: ship at world center, a fresh meteor field,
// no bullet in flight.
func (g *Game) startLevel() {
	g.phase = phasePlay
	g.paused = false
	g.levelCleared = false
	g.bullet = nil
	g.ship = NewShip(g.cfg, g.bounds.Div(2))
	g.spawnMeteors()
}

func (g *Game) stepPlay(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.startRun()
		return
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	turn, thrust := 0, 0
	if in.Has(core.ActionTurnLeft) {
		turn++
	}
	if in.Has(core.ActionTurnRight) {
		turn--
	}
	if in.Has(core.ActionThrustFwd) {
		thrust++
	}
	if in.Has(core.ActionThrustBack) {
		thrust--
	}

	g.ship.Update(g.dt, g.bounds, turn, thrust)
	if g.bullet != nil {
		g.bullet.Update(g.dt, g.bounds)
	}
	for _, m := range g.meteors {
		m.Update(g.dt, g.bounds)
	}

	// Only one bullet may be in flight; firing spawns it a ship
	// length ahead of the nose, moving from the next tick.
	if in.Has(core.ActionFire) && g.bullet == nil {
		g.bullet = NewBullet(g.cfg, g.ship.Muzzle(), g.ship.Deg)
	}

	objects := make([]collision.Object, 0, len(g.meteors)+2)
	objects = append(objects, g.ship)
	if g.bullet != nil {
		objects = append(objects, g.bullet)
	}
	for _, m := range g.meteors {
		objects = append(objects, m)
	}
	g.collider.Sweep(objects)

	g.reap()
}

// reap processes removal flags set during the sweep and advances the
// phase when the run ended or the field was cleared.
func (g *Game) reap() {
	if g.bullet != nil && g.bullet.Remove {
		g.bullet = nil
	}

	alive := g.meteors[:0]
	for _, m := range g.meteors {
		if !m.Remove {
			alive = append(alive, m)
		}
	}
	g.meteors = alive

	if g.ship.Remove {
		g.phase = phaseGameOver
		return
	}
	if g.levelCleared {
		g.levelCleared = false
		g.level++
		g.phase = phaseLevel
	}
}

// addScore awards points scaled by the current level.
func (g *Game) addScore(points int) {
	g.score += points * g.level
}

// aliveMeteors counts meteors not yet flagged for removal, including
// any spawned by splits this tick.
func (g *Game) aliveMeteors() int {
	n := 0
	for _, m := range g.meteors {
		if !m.Remove {
			n++
		}
	}
	return n
}

// spawnMeteors places the level's large meteors at random positions
// and headings, keeping each one clear of the ship and of the other
// spawns.
func (g *Game) spawnMeteors() {
	count := g.cfg.MeteorCount(g.level)
	clearance := g.cfg.Collision.SpawnClearanceSq

	var placed []geom.Vec
	for i := 0; i < count; i++ {
		var pos geom.Vec
		for attempt := 0; attempt < spawnAttempts; attempt++ {
			pos = geom.V(g.rng.Float64()*g.bounds.X, g.rng.Float64()*g.bounds.Y)
			if g.clearOf(pos, placed, clearance) {
				break
			}
		}
		placed = append(placed, pos)
		deg := g.rng.Float64() * 360
		g.meteors = append(g.meteors, NewMeteor(g.cfg, 0, pos, deg, g.rng))
	}
}

func (g *Game) clearOf(pos geom.Vec, placed []geom.Vec, clearance float64) bool {
	if pos.Sub(g.ship.Pos).MagSq() < clearance {
		return false
	}
	for _, p := range placed {
		if pos.Sub(p).MagSq() < clearance {
			return false
		}
	}
	return true
}

// splitMeteor replaces a destroyed meteor with next-tier children at
// its position. Child headings are random but at least a fifth of
// their even spacing apart, so the cluster always fans out.
func (g *Game) splitMeteor(m *Meteor) {
	next := m.Tier() + 1
	count := g.cfg.Meteors[m.Tier()].SplitCount
	if next >= len(g.cfg.Meteors) || count <= 0 {
		return
	}

	minSeparation := 0.2 * (360 / float64(count))
	var degs []float64
	for i := 0; i < count; i++ {
		var deg float64
		for attempt := 0; attempt < spawnAttempts; attempt++ {
			deg = g.rng.Float64() * 360
			if degSeparated(deg, degs, minSeparation) {
				break
			}
		}
		degs = append(degs, deg)
		g.meteors = append(g.meteors, NewMeteor(g.cfg, next, m.Pos, deg, g.rng))
	}
}

func degSeparated(deg float64, prior []float64, minSeparation float64) bool {
	for _, p := range prior {
		d := deg - p
		if d < 0 {
			d = -d
		}
		if d < minSeparation {
			return false
		}
	}
	return true
}
