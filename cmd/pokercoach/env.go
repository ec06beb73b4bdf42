package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokercoach/cmd/pokercoach/shared"
	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/internal/config"
	"github.com/lox/pokercoach/internal/profile"
)

// env is the configuration and logger every command starts from
type env struct {
	cfg    *config.Config
	logger *log.Logger
}

func setup(g *Globals) (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Server.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := shared.SetupLogger(cfg.Server.LogLevel)
	if g.NoColor {
		shared.DisableColor(logger)
	}
	logger.Debug("Loaded configuration", "path", g.Config)
	return &env{cfg: cfg, logger: logger}, nil
}

func (e *env) engine() *coach.Engine {
	return coach.NewEngine(e.cfg.Scoring)
}

func (e *env) profileStore(path string) *profile.Store {
	if path == "" {
		path = e.cfg.Trainer.Profile
	}
	return profile.NewStore(path, quartz.NewReal(), e.logger)
}
