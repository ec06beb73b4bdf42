// Package scenario generates random training spots: a hero hand, three
// opponents with hidden hands, a full run-out and the action facing the hero.
package scenario

import (
	"fmt"
	"math"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/pokercoach/classification"
	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/internal/randutil"
	"github.com/lox/pokercoach/poker"
	"github.com/lox/pokercoach/showdown"
)

// Mode selects which streets a spot may be dealt on
type Mode string

const (
	// Hands deals spots on any street
	Hands Mode = "hands"
	// Game deals preflop spots with smaller pots
	Game Mode = "game"
)

// ParseMode parses a mode name case-insensitively
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Hands, "":
		return Hands, nil
	case Game:
		return Game, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want hands or game)", s)
	}
}

// Focus narrows the spots a hands-mode generator deals
type Focus string

const (
	FocusAny     Focus = "any"
	FocusPreflop Focus = "preflop"
	FocusOuts    Focus = "outs"
	FocusFinal   Focus = "final"
)

// ParseFocus parses a focus name; unknown names fall back to FocusAny
func ParseFocus(s string) Focus {
	switch f := Focus(strings.ToLower(strings.TrimSpace(s))); f {
	case FocusPreflop, FocusOuts, FocusFinal:
		return f
	default:
		return FocusAny
	}
}

var (
	opponentNames   = []string{"OppA", "OppB", "OppC"}
	heroPositions   = []coach.Position{coach.Button, coach.CO, coach.HJ, coach.UTG}
	villainPosition = []coach.Position{coach.BB, coach.SB, coach.MP}

	flopSizing    = []float64{0.25, 0.33, 0.5, 0.66, 0.9}
	preflopSizing = []float64{1.6, 2.2, 2.8, 3.5, 4.2}
	laterSizing   = []float64{0.4, 0.6, 0.8, 1.1}
)

const (
	effectiveStack  = 100
	facingBetChance = 0.7
	callChance      = 0.35
	maxFocusDeals   = 64
)

// Spot is a generated decision point plus the hidden information needed to
// settle it at showdown
type Spot struct {
	State         coach.TableSnapshot `json:"state"`
	FullBoard     showdown.Board      `json:"fullBoard"`
	OpponentHands []showdown.Opponent `json:"opponentHands"`
	Mode          Mode                `json:"mode"`
}

// ShowdownInput builds the resolver input for the hero's decision
func (s Spot) ShowdownInput(action coach.Action) showdown.Input {
	return showdown.Input{
		HeroHand:   s.State.HeroHand,
		Opponents:  s.OpponentHands,
		Board:      s.FullBoard,
		HeroFolded: action == coach.Fold,
		HeroAction: action,
	}
}

// Generator deals spots from a seeded source. It is not safe for concurrent use.
type Generator struct {
	rng   *rand.Rand
	deck  *poker.Deck
	Focus Focus
}

// New returns a generator drawing from rng
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, deck: poker.NewDeck(rng), Focus: FocusAny}
}

// NewSeeded returns a generator seeded from seed
func NewSeeded(seed int64) *Generator {
	return New(randutil.New(seed))
}

// Generate deals one spot. Game mode is always preflop; hands mode honours Focus.
func (g *Generator) Generate(mode Mode) Spot {
	if mode != Game && g.Focus != FocusAny {
		for range maxFocusDeals {
			spot := g.deal(mode)
			if g.matches(spot) {
				return spot
			}
		}
	}
	return g.deal(mode)
}

func (g *Generator) matches(spot Spot) bool {
	switch g.Focus {
	case FocusPreflop:
		return spot.State.Street == poker.Preflop
	case FocusOuts:
		return spot.State.Outs != nil && spot.State.Street != poker.River
	case FocusFinal:
		return spot.State.Street == poker.River
	default:
		return true
	}
}

func (g *Generator) deal(mode Mode) Spot {
	if mode != Game {
		mode = Hands
	}
	g.deck.Reset()

	hero := g.deck.Deal(2)
	opponents := make([]showdown.Opponent, len(opponentNames))
	for i, name := range opponentNames {
		cards := g.deck.Deal(2)
		opponents[i] = showdown.Opponent{Name: name, Hand: [2]poker.Card{cards[0], cards[1]}}
	}
	runout := g.deck.Deal(5)
	full, _ := showdown.BoardFromCards(runout)

	street := poker.Preflop
	if mode == Hands {
		street = randutil.Pick(g.rng, []poker.Street{poker.Preflop, poker.Flop, poker.Turn, poker.River})
	}

	lo, hi := 4.5, 9.5
	if mode == Game {
		lo, hi = 1.2, 5
	}
	pot := round(randutil.Between(g.rng, lo, hi), 100)

	state := coach.TableSnapshot{
		HeroHand:       [2]poker.Card{hero[0], hero[1]},
		Board:          coach.BoardUpTo(runout, street),
		Street:         street,
		HeroPos:        randutil.Pick(g.rng, heroPositions),
		VillainPos:     randutil.Pick(g.rng, villainPosition),
		EffectiveStack: effectiveStack,
		Pot:            pot,
	}
	state.OpponentActions, state.Facing = g.opponentActions(street, pot)

	if outs, ok := classification.EstimateOuts(state.HeroHand[:], state.Board.Cards(), street); ok {
		state.Outs = &outs
	}

	return Spot{State: state, FullBoard: full, OpponentHands: opponents, Mode: mode}
}

// opponentActions has one primary opponent open the betting most of the time.
// Players after it call or fold; players before it checked (folded preflop).
// Otherwise everyone checks to the hero. The pot excludes the facing bet.
func (g *Generator) opponentActions(street poker.Street, pot float64) ([]coach.OpponentMove, *coach.Facing) {
	moves := make([]coach.OpponentMove, len(opponentNames))
	if !randutil.Chance(g.rng, facingBetChance) {
		for i, name := range opponentNames {
			moves[i] = coach.OpponentMove{Name: name, Action: coach.MoveCheck}
		}
		return moves, nil
	}

	kind := coach.MoveBet
	if street == poker.Preflop {
		kind = coach.MoveRaise
	}
	size := BetSize(g.rng, pot, street)
	primary := g.rng.IntN(len(opponentNames))

	for i, name := range opponentNames {
		switch {
		case i == primary:
			moves[i] = coach.OpponentMove{Name: name, Action: kind, Size: size}
		case i > primary && randutil.Chance(g.rng, callChance):
			moves[i] = coach.OpponentMove{Name: name, Action: coach.MoveCall, Size: size}
		case i > primary, street == poker.Preflop:
			moves[i] = coach.OpponentMove{Name: name, Action: coach.MoveFold}
		default:
			moves[i] = coach.OpponentMove{Name: name, Action: coach.MoveCheck}
		}
	}
	return moves, &coach.Facing{Type: kind, Size: size}
}

// BetSize picks a street-appropriate bet: a fraction of the pot postflop, a
// multiple of it preflop. Sizes are rounded to cents of a big blind, minimum 1.
func BetSize(rng *rand.Rand, pot float64, street poker.Street) float64 {
	sizing := laterSizing
	switch street {
	case poker.Preflop:
		sizing = preflopSizing
	case poker.Flop:
		sizing = flopSizing
	}
	return math.Max(1, round(pot*randutil.Pick(rng, sizing), 100))
}

func round(v, factor float64) float64 {
	return math.Round(v*factor) / factor
}
