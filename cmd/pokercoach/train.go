package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/pokercoach/internal/randutil"
	"github.com/lox/pokercoach/internal/scenario"
	"github.com/lox/pokercoach/internal/tui"
)

// TrainCmd runs the terminal trainer
type TrainCmd struct {
	Mode    string `short:"m" help:"Scenario mode: hands or game (overrides config)"`
	Focus   string `help:"Spot focus: any, preflop, outs or final (defaults to the profile preference)"`
	Seed    int64  `help:"Seed for reproducible spots (overrides config; 0 picks one)"`
	Profile string `help:"Profile file (overrides config)"`
}

func (c *TrainCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}

	modeName := e.cfg.Trainer.Mode
	if c.Mode != "" {
		modeName = c.Mode
	}
	mode, err := scenario.ParseMode(modeName)
	if err != nil {
		return err
	}

	seed := e.cfg.Trainer.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}
	seed = randutil.Seed(seed)
	e.logger.Debug("Starting trainer", "mode", mode, "seed", seed)

	generator := scenario.New(randutil.New(seed))
	if c.Focus != "" {
		generator.Focus = scenario.ParseFocus(c.Focus)
	}

	store := e.profileStore(c.Profile)
	if c.Focus != "" {
		if _, err := store.SetPreferredHands(string(generator.Focus)); err != nil {
			return err
		}
	}

	model, err := tui.New(tui.Options{
		Engine:    e.engine(),
		Generator: generator,
		Mode:      mode,
		Store:     store,
		Rand:      randutil.New(seed + 1),
		Logger:    e.logger,
	})
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("trainer: %w", err)
	}
	return nil
}
