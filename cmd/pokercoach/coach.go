package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coder/quartz"

	"github.com/lox/pokercoach/classification"
	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/internal/server"
	"github.com/lox/pokercoach/poker"
)

// CoachCmd grades one decision
type CoachCmd struct {
	Hand       string   `short:"H" required:"" help:"Hero hole cards, e.g. AsKs"`
	Board      string   `short:"b" help:"Board cards, 0, 3, 4 or 5 of them"`
	Pot        float64  `short:"p" default:"1.5" help:"Pot in big blinds, excluding the bet faced"`
	Facing     float64  `short:"f" help:"Size of the bet or raise faced, in big blinds"`
	FacingType string   `default:"BET" enum:"BET,RAISE" help:"Whether the amount faced is a BET or a RAISE"`
	HeroPos    string   `default:"BTN" help:"Hero position"`
	VillainPos string   `default:"BB" help:"Villain position"`
	Opponent   []string `short:"o" help:"Opponent action as NAME:ACTION[:SIZE], repeatable"`
	Action     string   `short:"a" required:"" help:"Hero action: fold, call or raise"`
	Size       *float64 `short:"s" help:"Hero raise size in big blinds"`
	OutsAnswer *int     `help:"Your outs count, graded against the estimate"`
	JSON       bool     `help:"Print the result as JSON"`
}

func (c *CoachCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}

	req, err := c.request()
	if err != nil {
		return err
	}

	svc := server.NewService(e.engine(), quartz.NewReal(), e.logger)
	resp, err := svc.Coach(req)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	printCoachResponse(os.Stdout, req.State, resp)
	return nil
}

func (c *CoachCmd) request() (server.CoachRequest, error) {
	hand, err := parseHand(c.Hand)
	if err != nil {
		return server.CoachRequest{}, err
	}

	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return server.CoachRequest{}, fmt.Errorf("board: %w", err)
	}
	street, err := streetForBoard(len(board))
	if err != nil {
		return server.CoachRequest{}, err
	}

	action, err := coach.ParseAction(c.Action)
	if err != nil {
		return server.CoachRequest{}, err
	}

	opponents, err := parseOpponents(c.Opponent)
	if err != nil {
		return server.CoachRequest{}, err
	}

	state := coach.TableSnapshot{
		HeroHand:        hand,
		Board:           coach.BoardUpTo(board, street),
		Street:          street,
		HeroPos:         coach.Position(strings.ToUpper(c.HeroPos)),
		VillainPos:      coach.Position(strings.ToUpper(c.VillainPos)),
		Pot:             c.Pot,
		OpponentActions: opponents,
	}
	if c.Facing > 0 {
		state.Facing = &coach.Facing{Type: coach.Move(c.FacingType), Size: c.Facing}
	}
	if outs, ok := classification.EstimateOuts(hand[:], board, street); ok {
		state.Outs = &outs
	}

	return server.CoachRequest{
		State:      state,
		HeroAction: action,
		RaiseSize:  c.Size,
		OutsAnswer: c.OutsAnswer,
	}, nil
}

func parseHand(s string) ([2]poker.Card, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return [2]poker.Card{}, fmt.Errorf("hand: %w", err)
	}
	if len(cards) != 2 {
		return [2]poker.Card{}, fmt.Errorf("hand: expected 2 cards, got %d", len(cards))
	}
	return [2]poker.Card{cards[0], cards[1]}, nil
}

func streetForBoard(n int) (poker.Street, error) {
	switch n {
	case 0:
		return poker.Preflop, nil
	case 3:
		return poker.Flop, nil
	case 4:
		return poker.Turn, nil
	case 5:
		return poker.River, nil
	default:
		return 0, fmt.Errorf("board: expected 0, 3, 4 or 5 cards, got %d", n)
	}
}

func parseOpponents(specs []string) ([]coach.OpponentMove, error) {
	moves := make([]coach.OpponentMove, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
			return nil, fmt.Errorf("opponent %q: expected NAME:ACTION[:SIZE]", spec)
		}
		move := coach.OpponentMove{Name: parts[0], Action: coach.Move(strings.ToUpper(parts[1]))}
		if !move.Action.Valid() {
			return nil, fmt.Errorf("opponent %q: unknown action %q", spec, parts[1])
		}
		if len(parts) == 3 {
			size, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, fmt.Errorf("opponent %q: bad size: %w", spec, err)
			}
			move.Size = size
		}
		moves = append(moves, move)
	}
	return moves, nil
}

func printCoachResponse(w io.Writer, s coach.TableSnapshot, resp server.CoachResponse) {
	r := resp.Result

	best := string(r.BestAction)
	if r.RaiseSize != nil {
		best += " " + strconv.FormatFloat(*r.RaiseSize, 'f', -1, 64) + "bb"
	}

	fmt.Fprintf(w, "%s %s  %s\n", s.Street, poker.FormatCards(s.HeroHand[:]), poker.FormatCards(s.Board.Cards()))
	fmt.Fprintf(w, "%s  score %d  best: %s\n", verdictStyle(r.Verdict).Render(strings.ToUpper(string(r.Verdict))), r.Score, best)
	fmt.Fprintf(w, "equity %.2f%%  pot odds %.2f%%\n", r.Equity, r.PotOdds)
	fmt.Fprintln(w, r.Summary)
	for _, reason := range r.Reasons {
		fmt.Fprintf(w, "  - %s\n", reason)
	}
	if len(r.ConceptTags) > 0 {
		fmt.Fprintln(w, dimStyle.Render("tags: "+strings.Join(r.ConceptTags, ", ")))
	}
	if g := resp.OutsGrade; g != nil {
		fmt.Fprintf(w, "outs: you said %d, correct is %d (%s)\n", g.Answer, g.Correct, g.Grade)
	}
}
