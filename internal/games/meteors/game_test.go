package meteors

import (
	"strings"
	"testing"

	"github.com/arcadelab/tui-meteors/internal/config"
	"github.com/arcadelab/tui-meteors/internal/core"
	"github.com/arcadelab/tui-meteors/internal/geom"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// confirm produces the input frame that advances past menu screens.
func confirm() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i == 0 {
			inputSequence[i].Set(core.ActionConfirm)
		}
		if i%7 == 0 {
			inputSequence[i].Set(core.ActionTurnLeft)
		}
		if i%3 == 0 {
			inputSequence[i].Set(core.ActionThrustFwd)
		}
		if i%30 == 0 {
			inputSequence[i].Set(core.ActionFire)
		}
	}

	run := func() (*Game, core.GameState) {
		g := New(config.DefaultMeteorsConfig())
		g.Reset(testRuntime(12345))
		var state core.GameState
		for _, in := range inputSequence {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return g, state
	}

	g1, state1 := run()
	g2, state2 := run()

	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
	if g1.ship.Pos != g2.ship.Pos {
		t.Errorf("Determinism failed: ship positions differ. Run1=%v, Run2=%v", g1.ship.Pos, g2.ship.Pos)
	}
	if len(g1.meteors) != len(g2.meteors) {
		t.Errorf("Determinism failed: meteor counts differ. Run1=%d, Run2=%d", len(g1.meteors), len(g2.meteors))
	}
}

func TestGameReset(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(42))

	g.Step(confirm())
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionThrustFwd)
		g.Step(in)
	}
	g.score = 500 // pretend the run scored

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Reset should clear score, got %d", state.Score)
	}
	if state.Level != 1 {
		t.Errorf("Reset should return to level 1, got %d", state.Level)
	}
	if state.GameOver || state.Paused {
		t.Errorf("Reset should clear flags, got %+v", state)
	}
	if g.phase != phaseStart {
		t.Error("Reset should show the start screen")
	}
}

func TestGameStartTransition(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(1))

	if g.phase != phaseStart {
		t.Fatal("Game should begin on the start screen")
	}

	// Non-confirm input stays on the start screen
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)
	if g.phase != phaseStart {
		t.Error("Fire should not leave the start screen")
	}

	g.Step(confirm())
	if g.phase != phasePlay {
		t.Fatal("Confirm should enter play")
	}
	if g.ship == nil {
		t.Fatal("Play should spawn a ship")
	}

	center := geom.V(g.cfg.World.Width/2, g.cfg.World.Height/2)
	if g.ship.Pos != center {
		t.Errorf("Ship should spawn at world center %v, got %v", center, g.ship.Pos)
	}
	if len(g.meteors) != g.cfg.MeteorCount(1) {
		t.Errorf("Level 1 should spawn %d meteors, got %d", g.cfg.MeteorCount(1), len(g.meteors))
	}
}

func TestSpawnClearance(t *testing.T) {
	for _, seed := range []int64{1, 7, 99, 1234} {
		g := New(config.DefaultMeteorsConfig())
		g.Reset(testRuntime(seed))
		g.level = 4 // spawn a crowd
		g.startLevel()

		clearance := g.cfg.Collision.SpawnClearanceSq
		for i, m := range g.meteors {
			if d := m.Pos.Sub(g.ship.Pos).MagSq(); d < clearance {
				t.Errorf("seed %d: meteor %d spawned %v from ship (squared), want >= %v", seed, i, d, clearance)
			}
			for j := i + 1; j < len(g.meteors); j++ {
				if d := m.Pos.Sub(g.meteors[j].Pos).MagSq(); d < clearance {
					t.Errorf("seed %d: meteors %d and %d spawned %v apart (squared), want >= %v", seed, i, j, d, clearance)
				}
			}
		}
	}
}

func TestSingleBulletInFlight(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(5))
	g.Step(confirm())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)

	g.Step(fire)
	if g.bullet == nil {
		t.Fatal("Fire should spawn a bullet")
	}
	first := g.bullet

	g.Step(fire)
	if g.bullet != first {
		t.Error("Second fire should not replace the live bullet")
	}
}

func TestBulletExpiresOffWorld(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(5))
	g.Step(confirm())
	g.meteors = nil // clear the field so nothing absorbs the shot

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	// Ship center to top edge is 240 world units at 500 units/sec
	for i := 0; i < 60 && g.bullet != nil; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.bullet != nil {
		t.Error("Bullet should be removed after leaving the world")
	}
}

func TestBulletDamagesMeteor(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(9))
	g.Step(confirm())

	// One stationary large meteor straight up from the ship
	m := NewMeteor(g.cfg, 0, geom.V(g.cfg.World.Width/2, 450), 0, g.rng)
	m.Vel = geom.Vec{}
	m.turnSpeed = 0
	g.meteors = []*Meteor{m}

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	if m.health >= m.maxHealth {
		t.Errorf("Meteor should have taken damage, health still %d", m.health)
	}
	if g.bullet != nil {
		t.Error("Bullet should be spent after hitting the meteor")
	}
	if g.State().Score != 0 {
		t.Errorf("A surviving meteor should not score, got %d", g.State().Score)
	}
}

func TestShipMeteorCollisionEndsRun(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(3))
	g.Step(confirm())

	// One stationary large meteor ahead; thrust into it
	m := NewMeteor(g.cfg, 0, geom.V(g.cfg.World.Width/2, 400), 0, g.rng)
	m.Vel = geom.Vec{}
	m.turnSpeed = 0
	g.meteors = []*Meteor{m}

	thrust := core.NewInputFrame()
	thrust.Set(core.ActionThrustFwd)
	for i := 0; i < 150 && !g.State().GameOver; i++ {
		g.Step(thrust)
	}

	if !g.State().GameOver {
		t.Fatal("Flying into a meteor should end the run")
	}
}

func TestPracticeShipSurvives(t *testing.T) {
	g := NewPractice(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(3))
	g.Step(confirm())

	m := NewMeteor(g.cfg, 0, geom.V(g.cfg.World.Width/2, 400), 0, g.rng)
	m.Vel = geom.Vec{}
	m.turnSpeed = 0
	g.meteors = []*Meteor{m}

	thrust := core.NewInputFrame()
	thrust.Set(core.ActionThrustFwd)
	for i := 0; i < 150; i++ {
		g.Step(thrust)
	}

	if g.State().GameOver {
		t.Error("Practice ship should survive meteor contact")
	}
}

func TestMeteorSplit(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(11))
	g.Step(confirm())

	m := NewMeteor(g.cfg, 0, geom.V(100, 100), 0, g.rng)
	g.meteors = []*Meteor{m}

	before := len(g.meteors)
	g.splitMeteor(m)

	children := g.meteors[before:]
	want := g.cfg.Meteors[0].SplitCount
	if len(children) != want {
		t.Fatalf("Large meteor should split into %d, got %d", want, len(children))
	}
	for _, c := range children {
		if c.Tier() != 1 {
			t.Errorf("Child should be tier 1, got %d", c.Tier())
		}
		if c.Pos != m.Pos {
			t.Errorf("Child should spawn at parent position %v, got %v", m.Pos, c.Pos)
		}
	}
}

func TestSmallestMeteorDoesNotSplit(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(11))
	g.Step(confirm())

	last := len(g.cfg.Meteors) - 1
	m := NewMeteor(g.cfg, last, geom.V(100, 100), 0, g.rng)
	g.meteors = []*Meteor{m}

	g.splitMeteor(m)
	if len(g.meteors) != 1 {
		t.Errorf("Smallest meteor should not split, got %d meteors", len(g.meteors))
	}
}

func TestDegSeparated(t *testing.T) {
	tests := []struct {
		name  string
		deg   float64
		prior []float64
		min   float64
		want  bool
	}{
		{"no prior", 90, nil, 24, true},
		{"far from prior", 200, []float64{10, 100}, 24, true},
		{"too close", 110, []float64{100}, 24, false},
		{"exactly at separation", 124, []float64{100}, 24, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := degSeparated(tt.deg, tt.prior, tt.min); got != tt.want {
				t.Errorf("degSeparated(%v, %v, %v) = %v, want %v", tt.deg, tt.prior, tt.min, got, tt.want)
			}
		})
	}
}

func TestScoreScalesWithLevel(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(2))
	g.Step(confirm())

	g.level = 3
	g.addScore(25)
	if g.State().Score != 75 {
		t.Errorf("25 points at level 3 should score 75, got %d", g.State().Score)
	}
}

func TestLevelTransitionOnLastMeteor(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(6))
	g.Step(confirm())

	// One smallest-tier meteor at one hit from destruction
	last := len(g.cfg.Meteors) - 1
	m := NewMeteor(g.cfg, last, geom.V(100, 100), 0, g.rng)
	m.health = 1
	g.meteors = []*Meteor{m}

	b := NewBullet(g.cfg, geom.V(100, 100), 0)
	g.handleBulletMeteor(b, m)
	g.reap()

	if g.phase != phaseLevel {
		t.Fatal("Destroying the last meteor should enter the level screen")
	}
	if g.State().Level != 2 {
		t.Errorf("Level should advance to 2, got %d", g.State().Level)
	}
	wantScore := g.cfg.Meteors[last].Score // level was 1 when it scored
	if g.State().Score != wantScore {
		t.Errorf("Score should be %d, got %d", wantScore, g.State().Score)
	}

	g.Step(confirm())
	if g.phase != phasePlay {
		t.Error("Confirm on the level screen should resume play")
	}
	if len(g.meteors) != g.cfg.MeteorCount(2) {
		t.Errorf("Level 2 should spawn %d meteors, got %d", g.cfg.MeteorCount(2), len(g.meteors))
	}
}

func TestMeteorColorRamp(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(8))
	g.Step(confirm())

	m := NewMeteor(g.cfg, 0, geom.V(100, 100), 0, g.rng) // 6 health
	wantByHealth := map[int]core.Color{
		6: core.ColorWhite,
		5: core.ColorYellow,
		3: core.ColorOrange,
		1: core.ColorRed,
	}
	for health, want := range wantByHealth {
		m.health = health
		if got := m.Color(); got != want {
			t.Errorf("Health %d: got color %v, want %v", health, got, want)
		}
	}
}

func TestShipWrapsAtEdges(t *testing.T) {
	cfg := config.DefaultMeteorsConfig()
	bounds := geom.V(cfg.World.Width, cfg.World.Height)

	s := NewShip(&cfg, geom.V(1, 1))
	s.Vel = geom.V(-120, -120) // moving off the bottom-left corner
	s.Update(1.0/60, bounds, 0, 0)

	if s.Pos.X < 0 || s.Pos.X >= bounds.X || s.Pos.Y < 0 || s.Pos.Y >= bounds.Y {
		t.Errorf("Ship should wrap inside the world, got %v", s.Pos)
	}
	if s.Pos.X < bounds.X-2 || s.Pos.Y < bounds.Y-2 {
		t.Errorf("Ship should reappear at the far edge, got %v", s.Pos)
	}
}

func TestGameOverRestart(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(4))
	g.Step(confirm())

	g.score = 200
	g.ship.Hit()
	g.reap()

	if g.phase != phaseGameOver {
		t.Fatal("Losing the ship should end the run")
	}
	if g.State().Score != 200 {
		t.Errorf("Score should survive into the game-over screen, got %d", g.State().Score)
	}

	g.Step(confirm())
	if g.phase != phasePlay {
		t.Error("Confirm on game over should start a fresh run")
	}
	if g.State().Score != 0 || g.State().Level != 1 {
		t.Errorf("Fresh run should reset score and level, got %+v", g.State())
	}
}

func TestRenderStartScreen(t *testing.T) {
	g := New(config.DefaultMeteorsConfig())
	g.Reset(testRuntime(1))

	s := core.NewScreen(80, 24)
	g.Render(s)

	if out := s.String(); !strings.Contains(out, "PRESS ENTER TO START") {
		t.Error("Start screen should show the start prompt")
	}
}
