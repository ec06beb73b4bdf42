package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/lox/pokercoach/poker"
)

// EvalCmd evaluates hands, optionally sharing a board, and ranks them
type EvalCmd struct {
	Board string   `short:"b" help:"Community cards shared by every hand"`
	Hands []string `arg:"" name:"hand" help:"Hole cards, or a full 5-7 card set when no board is given"`
}

type evaluatedHand struct {
	Cards      []poker.Card
	Evaluation poker.HandEvaluation
	Rank       int
}

func (c *EvalCmd) Run(g *Globals) error {
	if _, err := setup(g); err != nil {
		return err
	}

	hands, err := evaluateHands(c.Board, c.Hands)
	if err != nil {
		return err
	}
	printEvaluations(os.Stdout, hands)
	return nil
}

// evaluateHands ranks hands best first; tied hands share a rank
func evaluateHands(boardSpec string, specs []string) ([]evaluatedHand, error) {
	board, err := poker.ParseCards(boardSpec)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	seen := make(map[poker.Card]string)
	for _, c := range board {
		seen[c] = "board"
	}

	hands := make([]evaluatedHand, 0, len(specs))
	for _, spec := range specs {
		cards, err := poker.ParseCards(spec)
		if err != nil {
			return nil, fmt.Errorf("hand %q: %w", spec, err)
		}
		for _, c := range cards {
			if owner, ok := seen[c]; ok {
				return nil, fmt.Errorf("hand %q: %s is already used by %s", spec, c, owner)
			}
			seen[c] = spec
		}

		all := append(append([]poker.Card(nil), cards...), board...)
		if len(all) < 5 || len(all) > 7 {
			return nil, fmt.Errorf("hand %q: need 5 to 7 cards with the board, got %d", spec, len(all))
		}
		hands = append(hands, evaluatedHand{Cards: cards, Evaluation: poker.Evaluate(all)})
	}

	sort.SliceStable(hands, func(i, j int) bool {
		return poker.Compare(hands[i].Evaluation, hands[j].Evaluation) > 0
	})
	for i := range hands {
		switch {
		case i == 0:
			hands[i].Rank = 1
		case poker.Compare(hands[i].Evaluation, hands[i-1].Evaluation) == 0:
			hands[i].Rank = hands[i-1].Rank
		default:
			hands[i].Rank = i + 1
		}
	}
	return hands, nil
}

func printEvaluations(w io.Writer, hands []evaluatedHand) {
	for _, h := range hands {
		rank := fmt.Sprintf("%d.", h.Rank)
		if h.Rank == 1 {
			rank = goodStyle.Render(rank)
		}
		fmt.Fprintf(w, "%s %-20s %s\n", rank, poker.FormatCards(h.Cards), h.Evaluation.Label)
	}
}
