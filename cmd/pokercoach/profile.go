package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/pokercoach/internal/profile"
	"github.com/lox/pokercoach/internal/rating"
	"github.com/lox/pokercoach/internal/scenario"
)

// ProfileCmd groups the profile subcommands
type ProfileCmd struct {
	Show  ProfileShowCmd  `cmd:"" default:"1" help:"Show the saved profile"`
	Reset ProfileResetCmd `cmd:"" help:"Delete the saved profile"`
	Focus ProfileFocusCmd `cmd:"" help:"Set which spots the trainer deals"`
}

type ProfileFlags struct {
	Path string `help:"Profile file (overrides config)"`
}

type ProfileShowCmd struct {
	ProfileFlags
	JSON bool `help:"Print the profile as JSON"`
}

func (c *ProfileShowCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}

	p, err := e.profileStore(c.Path).Load()
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
	printProfile(os.Stdout, p)
	return nil
}

type ProfileResetCmd struct {
	ProfileFlags
}

func (c *ProfileResetCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}

	store := e.profileStore(c.Path)
	if err := store.Reset(); err != nil {
		return err
	}
	fmt.Printf("Profile %s reset\n", store.Path())
	return nil
}

type ProfileFocusCmd struct {
	ProfileFlags
	Focus string `arg:"" enum:"any,preflop,outs,final" help:"any, preflop, outs or final"`
}

func (c *ProfileFocusCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}

	focus := scenario.ParseFocus(c.Focus)
	p, err := e.profileStore(c.Path).SetPreferredHands(string(focus))
	if err != nil {
		return err
	}
	fmt.Printf("Trainer focus set to %s\n", p.PreferredHands)
	return nil
}

func printProfile(w io.Writer, p profile.Profile) {
	progress := rating.ProgressFor(p.Rating)

	fmt.Fprintf(w, "%s %s, rating %d\n", headerStyle.Render("Tier:"), p.Tier, p.Rating)
	if !progress.Current.Unbounded() {
		fmt.Fprintf(w, "  %s %.0f%% of the way to %s\n", progressBar(progress.Pct, 20), progress.Pct*100, progress.Next.Name)
	}
	fmt.Fprintf(w, "Decisions: %d\n", p.TotalDecisions)
	fmt.Fprintf(w, "Hands:     %d\n", p.TotalHands)
	fmt.Fprintf(w, "Outs right: %d\n", p.CorrectOuts)
	if p.LastScore != nil {
		fmt.Fprintf(w, "Last score: %d\n", *p.LastScore)
	}
	fmt.Fprintf(w, "Focus:     %s\n", p.PreferredHands)
	fmt.Fprintf(w, "Last played: %s\n", p.LastPlayed.Format("2006-01-02 15:04"))
}

func progressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	filled = max(0, min(width, filled))
	return goodStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}
