package server

import (
	"errors"
	"fmt"

	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/poker"
	"github.com/lox/pokercoach/showdown"
)

// ErrInvalidSnapshot is returned for requests the engine must not be given
var ErrInvalidSnapshot = errors.New("invalid snapshot")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSnapshot, fmt.Sprintf(format, args...))
}

// ValidateCoachRequest checks the caller's side of the coaching contract:
// two hole cards, a board consistent with the street, known action labels
// and non-negative sizes.
func ValidateCoachRequest(req CoachRequest) error {
	switch req.HeroAction {
	case coach.Fold, coach.Call, coach.Raise:
	default:
		return invalid("unknown hero action %q", req.HeroAction)
	}
	if req.RaiseSize != nil && *req.RaiseSize < 0 {
		return invalid("raise size must not be negative")
	}
	if req.OutsAnswer != nil && *req.OutsAnswer < 0 {
		return invalid("outs answer must not be negative")
	}
	return ValidateSnapshot(req.State)
}

// ValidateSnapshot checks a table snapshot
func ValidateSnapshot(s coach.TableSnapshot) error {
	if s.Street > poker.River {
		return invalid("unknown street")
	}

	b := s.Board
	switch {
	case s.Street == poker.Preflop && len(b.Flop) != 0:
		return invalid("flop shown preflop")
	case s.Street >= poker.Flop && len(b.Flop) != 3:
		return invalid("street %s needs 3 flop cards, got %d", s.Street, len(b.Flop))
	case (s.Street >= poker.Turn) != (b.Turn != nil):
		return invalid("turn card does not match street %s", s.Street)
	case (s.Street == poker.River) != (b.River != nil):
		return invalid("river card does not match street %s", s.Street)
	}

	if err := distinct(append(s.HeroHand[:], b.Cards()...)); err != nil {
		return err
	}

	if s.Pot < 0 {
		return invalid("pot must not be negative")
	}
	if s.Facing != nil {
		if s.Facing.Type != coach.MoveBet && s.Facing.Type != coach.MoveRaise {
			return invalid("facing type must be BET or RAISE, got %q", s.Facing.Type)
		}
		if s.Facing.Size < 0 {
			return invalid("facing size must not be negative")
		}
	}
	for _, m := range s.OpponentActions {
		if !m.Action.Valid() {
			return invalid("opponent %s has unknown action %q", m.Name, m.Action)
		}
		if m.Size < 0 {
			return invalid("opponent %s has a negative size", m.Name)
		}
	}
	return nil
}

// ValidateShowdown checks that every card in the hand is real and unique
func ValidateShowdown(in showdown.Input) error {
	cards := append(in.HeroHand[:], in.Board.Cards()...)
	for _, o := range in.Opponents {
		cards = append(cards, o.Hand[:]...)
	}
	return distinct(cards)
}

func distinct(cards []poker.Card) error {
	seen := make(map[poker.Card]bool, len(cards))
	for _, c := range cards {
		if !c.IsValid() {
			return invalid("invalid card rank=%d suit=%d", c.Rank, c.Suit)
		}
		if seen[c] {
			return invalid("card %s appears twice", c)
		}
		seen[c] = true
	}
	return nil
}
