// Package config provides YAML-based game configuration loading and
// difficulty presets for the meteors game.
package config

// MeteorsConfig contains all tuning for the meteors game. Values are
// in world units (the simulation runs in a fixed 640×480 world; the
// renderer scales to the terminal).
type MeteorsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Meteors    []MeteorTier     `yaml:"meteors"`
	Collision  CollisionConfig  `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulation space.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship parameters.
type ShipConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Accel     float64 `yaml:"accel"`      // world units per second²
	TurnSpeed float64 `yaml:"turn_speed"` // degrees per second
}

// BulletConfig defines the projectile parameters.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // world units per second
}

// MeteorTier defines one meteor size class. Tiers are ordered largest
// first; a destroyed meteor of tier i splits into SplitCount meteors
// of tier i+1 (the last tier splits into nothing).
type MeteorTier struct {
	OutlinePoints int     `yaml:"outline_points"` // vertices on the generated outline
	Size          float64 `yaml:"size"`           // diameter in world units
	Speed         float64 `yaml:"speed"`          // world units per second
	Health        int     `yaml:"health"`         // hits to destroy (must be > 1 for the color ramp)
	Score         int     `yaml:"score"`          // points awarded, multiplied by level
	SplitCount    int     `yaml:"split_count"`    // children spawned on destruction
}

// CollisionConfig defines engine-level collision parameters.
type CollisionConfig struct {
	// HistoryDepth is how many past position/orientation samples each
	// entity keeps for swept tests.
	HistoryDepth int `yaml:"history_depth"`
	// SweepLag is how many frames back the swept segment reaches.
	SweepLag int `yaml:"sweep_lag"`
	// DegenerateNudge repairs zero-length segments. Tuned for the
	// 640×480 world scale.
	DegenerateNudge float64 `yaml:"degenerate_nudge"`
	// SpawnClearanceSq is the minimum squared distance between a new
	// meteor and the ship (and other new meteors) at level start.
	SpawnClearanceSq float64 `yaml:"spawn_clearance_sq"`
}

// DifficultyConfig defines preset-driven scaling of the meteor field.
type DifficultyConfig struct {
	// Level is the base difficulty in [0, 1].
	Level float64 `yaml:"level"`
	// SpeedMultiplier scales meteor speed at difficulty 1.
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	// ExtraMeteors is added to the per-level large-meteor count at
	// difficulty 1.
	ExtraMeteors int `yaml:"extra_meteors"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// LevelForPreset returns the difficulty level for a preset.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset overrides the config's difficulty level from a preset
// name. Unknown or empty names leave the config untouched.
func ApplyPreset(cfg *MeteorsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Level = LevelForPreset(preset)
	}
}

// MeteorSpeed returns the tier speed scaled by difficulty.
func (c *MeteorsConfig) MeteorSpeed(tier int) float64 {
	if tier < 0 || tier >= len(c.Meteors) {
		return 0
	}
	base := c.Meteors[tier].Speed
	return base * (1.0 + c.Difficulty.Level*c.Difficulty.SpeedMultiplier)
}

// MeteorCount returns how many large meteors a level spawns.
func (c *MeteorsConfig) MeteorCount(level int) int {
	extra := int(c.Difficulty.Level * float64(c.Difficulty.ExtraMeteors))
	return level + extra
}
