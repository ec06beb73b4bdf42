package coach

import (
	"fmt"
	"strings"

	"github.com/lox/pokercoach/classification"
	"github.com/lox/pokercoach/poker"
)

// Action is a hero decision: fold, call or raise. Checking is treated as a call.
type Action string

const (
	Fold  Action = "fold"
	Call  Action = "call"
	Raise Action = "raise"
)

// ParseAction parses an action name case-insensitively
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold", "f":
		return Fold, nil
	case "call", "check", "c":
		return Call, nil
	case "raise", "bet", "r":
		return Raise, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// UnmarshalText accepts any casing ("RAISE" from clients, "raise" internally)
func (a *Action) UnmarshalText(text []byte) error {
	action, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = action
	return nil
}

// Move is an opponent action label
type Move string

const (
	MoveFold  Move = "FOLD"
	MoveCall  Move = "CALL"
	MoveRaise Move = "RAISE"
	MoveCheck Move = "CHECK"
	MoveBet   Move = "BET"
)

// IsAggressive reports whether the move puts chips in as a bet or raise
func (m Move) IsAggressive() bool {
	return m == MoveBet || m == MoveRaise
}

// Valid reports whether the move is one of the known labels
func (m Move) Valid() bool {
	switch m {
	case MoveFold, MoveCall, MoveRaise, MoveCheck, MoveBet:
		return true
	}
	return false
}

// Position is a seat label such as BTN or BB
type Position string

const (
	UTG    Position = "UTG"
	MP     Position = "MP"
	HJ     Position = "HJ"
	CO     Position = "CO"
	Button Position = "BTN"
	SB     Position = "SB"
	BB     Position = "BB"
)

// Facing is the bet or raise the hero must respond to
type Facing struct {
	Type Move    `json:"type"`
	Size float64 `json:"sizeBb"`
}

// OpponentMove is one opponent's action on the current street
type OpponentMove struct {
	Name   string  `json:"name"`
	Action Move    `json:"action"`
	Size   float64 `json:"sizeBb,omitempty"`
}

// Board holds the community cards partitioned by street
type Board struct {
	Flop  []poker.Card `json:"flop"`
	Turn  *poker.Card  `json:"turn"`
	River *poker.Card  `json:"river"`
}

// Cards returns the visible community cards in dealing order
func (b Board) Cards() []poker.Card {
	cards := make([]poker.Card, 0, 5)
	cards = append(cards, b.Flop...)
	if b.Turn != nil {
		cards = append(cards, *b.Turn)
	}
	if b.River != nil {
		cards = append(cards, *b.River)
	}
	return cards
}

// BoardUpTo exposes the cards of a full five-card run-out that are visible on street
func BoardUpTo(full []poker.Card, street poker.Street) Board {
	var b Board
	if street >= poker.Flop && len(full) >= 3 {
		b.Flop = append([]poker.Card(nil), full[:3]...)
	}
	if street >= poker.Turn && len(full) >= 4 {
		turn := full[3]
		b.Turn = &turn
	}
	if street >= poker.River && len(full) >= 5 {
		river := full[4]
		b.River = &river
	}
	return b
}

// TableSnapshot is the decision point handed to the engine. It is owned by
// the caller and never modified.
type TableSnapshot struct {
	HeroHand        [2]poker.Card              `json:"heroHand"`
	Board           Board                      `json:"board"`
	Street          poker.Street               `json:"street"`
	HeroPos         Position                   `json:"heroPos"`
	VillainPos      Position                   `json:"villainPos,omitempty"`
	EffectiveStack  float64                    `json:"effectiveStackBb,omitempty"`
	Pot             float64                    `json:"potBb"`
	Facing          *Facing                    `json:"facing"`
	OpponentActions []OpponentMove             `json:"opponentActions"`
	Outs            *classification.OutsResult `json:"outsInfo,omitempty"`
}

// Verdict is the coarse grade derived from the score
type Verdict string

const (
	VerdictPerfect  Verdict = "perfect"
	VerdictGreat    Verdict = "great"
	VerdictGood     Verdict = "good"
	VerdictNeutral  Verdict = "neutral"
	VerdictNotIdeal Verdict = "not-ideal"
	VerdictBad      Verdict = "bad"
)

// Result is the coaching feedback for one decision
type Result struct {
	Score       int      `json:"score"`
	Verdict     Verdict  `json:"verdict"`
	BestAction  Action   `json:"bestAction"`
	RaiseSize   *float64 `json:"bestRaiseSizeBb"`
	Reasons     []string `json:"reasons"`
	ConceptTags []string `json:"conceptTags"`
	Summary     string   `json:"coachSummary"`

	Equity  float64 `json:"equityPct"`
	PotOdds float64 `json:"potOddsPct"`
}
