package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMeteors loads the meteors game configuration.
// Search order: customPath -> ~/.meteors/configs/meteors.yaml ->
// ./configs/meteors.yaml -> embedded default.
func LoadMeteors(customPath string) (MeteorsConfig, error) {
	var cfg MeteorsConfig

	// An explicit path must work or the caller hears about it.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := validate(&cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory
	if userCfgPath := userConfigPath("meteors.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && validate(&cfg) == nil {
				return cfg, nil
			}
		}
	}

	// Local configs directory
	if data, err := os.ReadFile("configs/meteors.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(&cfg) == nil {
			return cfg, nil
		}
	}

	// Embedded default YAML
	if err := yaml.Unmarshal(defaultMeteorsYAML, &cfg); err != nil || validate(&cfg) != nil {
		return DefaultMeteorsConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".meteors", "configs", filename)
}

// validate rejects configs the simulation cannot run with.
func validate(cfg *MeteorsConfig) error {
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive")
	}
	if len(cfg.Meteors) == 0 {
		return fmt.Errorf("at least one meteor tier required")
	}
	for i, tier := range cfg.Meteors {
		// The health color ramp divides by health-1.
		if tier.Health < 2 {
			return fmt.Errorf("meteor tier %d: health must be at least 2", i)
		}
		if tier.OutlinePoints < 3 {
			return fmt.Errorf("meteor tier %d: outline needs at least 3 points", i)
		}
		if tier.Size <= 0 {
			return fmt.Errorf("meteor tier %d: size must be positive", i)
		}
	}
	if cfg.Collision.HistoryDepth < 2 {
		return fmt.Errorf("collision history_depth must be at least 2")
	}
	if cfg.Collision.SweepLag < 1 || cfg.Collision.SweepLag >= cfg.Collision.HistoryDepth {
		return fmt.Errorf("collision sweep_lag must be in [1, history_depth)")
	}
	return nil
}
