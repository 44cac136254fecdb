package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	World      WorldConfig      `toml:"world"`
	Simulation SimulationConfig `toml:"simulation"`
	View       ViewConfig       `toml:"view"`
	Logging    LoggingConfig    `toml:"logging"`
}

type WorldConfig struct {
	Seed     uint64 `toml:"seed"`     // 0 = use the scenario's seed
	Scenario string `toml:"scenario"` // path to the scenario YAML
}

type SimulationConfig struct {
	MaxColorPasses   int     `toml:"max_color_passes"`  // 0 = propagate until settled
	RecruitPrototype string  `toml:"recruit_prototype"` // spawned by the Recruit action
	GridCellSize     float64 `toml:"grid_cell_size"`    // map index cell, in map units
}

type ViewConfig struct {
	// Viewport used by the command-line front end, in map units.
	MinX float64 `toml:"min_x"`
	MinY float64 `toml:"min_y"`
	MaxX float64 `toml:"max_x"`
	MaxY float64 `toml:"max_y"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config { return defaults() }

func (c *Config) validate() error {
	if c.Simulation.MaxColorPasses < 0 {
		return fmt.Errorf("simulation.max_color_passes must be >= 0, got %d", c.Simulation.MaxColorPasses)
	}
	if c.Simulation.GridCellSize <= 0 {
		return fmt.Errorf("simulation.grid_cell_size must be > 0, got %g", c.Simulation.GridCellSize)
	}
	if c.View.MinX > c.View.MaxX || c.View.MinY > c.View.MaxY {
		return fmt.Errorf("view: empty viewport")
	}
	return nil
}

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			Scenario: "data/yaml/rheged.yaml",
		},
		Simulation: SimulationConfig{
			MaxColorPasses:   0,
			RecruitPrototype: "bonheddwr",
			GridCellSize:     8,
		},
		View: ViewConfig{
			MinX: -30,
			MinY: -20,
			MaxX: 15,
			MaxY: 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
