package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coder/quartz"

	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/internal/server"
	"github.com/lox/pokercoach/poker"
	"github.com/lox/pokercoach/showdown"
)

// ShowdownCmd settles a completed hand
type ShowdownCmd struct {
	Hand     string   `short:"H" required:"" help:"Hero hole cards"`
	Board    string   `short:"b" required:"" help:"Complete five-card board"`
	Opponent []string `short:"o" required:"" help:"Opponent as NAME:CARDS, repeatable"`
	Folded   bool     `help:"Hero folded before showdown"`
}

func (c *ShowdownCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}

	in, err := c.input()
	if err != nil {
		return err
	}

	svc := server.NewService(e.engine(), quartz.NewReal(), e.logger)
	result, err := svc.Showdown(in)
	if err != nil {
		return err
	}
	printShowdown(os.Stdout, result)
	return nil
}

func (c *ShowdownCmd) input() (showdown.Input, error) {
	hand, err := parseHand(c.Hand)
	if err != nil {
		return showdown.Input{}, err
	}

	cards, err := poker.ParseCards(c.Board)
	if err != nil {
		return showdown.Input{}, fmt.Errorf("board: %w", err)
	}
	board, err := showdown.BoardFromCards(cards)
	if err != nil {
		return showdown.Input{}, err
	}

	in := showdown.Input{
		HeroHand:   hand,
		Board:      board,
		HeroFolded: c.Folded,
		HeroAction: coach.Call,
	}
	if c.Folded {
		in.HeroAction = coach.Fold
	}

	for _, spec := range c.Opponent {
		name, cards, ok := strings.Cut(spec, ":")
		if !ok || name == "" {
			return showdown.Input{}, fmt.Errorf("opponent %q: expected NAME:CARDS", spec)
		}
		oppHand, err := parseHand(cards)
		if err != nil {
			return showdown.Input{}, fmt.Errorf("opponent %s: %w", name, err)
		}
		in.Opponents = append(in.Opponents, showdown.Opponent{Name: name, Hand: oppHand})
	}
	return in, nil
}

func printShowdown(w io.Writer, r showdown.Result) {
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Board:"), poker.FormatCards(r.FinalBoard.Cards()))

	winners := make(map[string]bool, len(r.Winners))
	for _, p := range r.Winners {
		winners[p.ID] = true
	}
	for _, p := range r.Players {
		name := p.Name
		if p.IsHero && r.HeroFolded {
			name += " (folded)"
		}
		line := fmt.Sprintf("%-14s %s  %s", name, poker.FormatCards(p.Hand[:]), p.Evaluation.Label)
		if winners[p.ID] {
			line = goodStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}

	names := make([]string, len(r.ActiveWinners))
	for i, p := range r.ActiveWinners {
		names[i] = p.Name
	}
	fmt.Fprintf(w, "Pot goes to: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "Hero would %s\n", r.HeroWouldResult)
}
