package config

import (
	_ "embed"
)

//go:embed defaults/meteors.yaml
var defaultMeteorsYAML []byte

// DefaultMeteorsConfig returns the built-in tuning, matching the
// embedded defaults/meteors.yaml. Used as the last-resort fallback if
// the embedded YAML fails to parse.
func DefaultMeteorsConfig() MeteorsConfig {
	return MeteorsConfig{
		World: WorldConfig{
			Width:  640,
			Height: 480,
		},
		Ship: ShipConfig{
			Width:     20,
			Height:    40,
			Accel:     300,
			TurnSpeed: 200,
		},
		Bullet: BulletConfig{
			Width:  5,
			Height: 9,
			Speed:  500,
		},
		Meteors: []MeteorTier{
			{OutlinePoints: 18, Size: 200, Speed: 40, Health: 6, Score: 25, SplitCount: 3},
			{OutlinePoints: 12, Size: 100, Speed: 60, Health: 4, Score: 50, SplitCount: 3},
			{OutlinePoints: 8, Size: 40, Speed: 80, Health: 2, Score: 100, SplitCount: 0},
		},
		Collision: CollisionConfig{
			HistoryDepth:     5,
			SweepLag:         2,
			DegenerateNudge:  0.1,
			SpawnClearanceSq: 20000,
		},
		Difficulty: DifficultyConfig{
			Level:           0.0,
			SpeedMultiplier: 1.0,
			ExtraMeteors:    2,
		},
	}
}
