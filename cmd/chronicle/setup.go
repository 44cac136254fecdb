package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/chronicle-sim/chronicle/internal/config"
	"github.com/chronicle-sim/chronicle/internal/data"
	"github.com/chronicle-sim/chronicle/internal/sim"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = "config/chronicle.toml"

// loadConfig reads the --config file. A missing default file falls back to
// built-in defaults; a missing explicit file is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// Snapshots go to stdout; keep logs off it.
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

// setup loads config and scenario and builds the simulation.
func setup(cmd *cobra.Command) (*sim.Simulation, *config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}
	sc, err := data.LoadScenario(cfg.World.Scenario)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	return sim.New(sc, sim.OptionsFrom(cfg), log), cfg, log, nil
}
