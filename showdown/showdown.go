// Package showdown settles a completed hand between the hero and the
// opponents, including what would have happened had the hero not folded.
package showdown

import (
	"fmt"

	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/poker"
)

// HeroID identifies the hero among the players
const HeroID = "hero"

// Outcome is the hero's result had they stayed in the hand
type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Chop Outcome = "chop"
)

// Board is a completed five-card board
type Board struct {
	Flop  [3]poker.Card `json:"flop"`
	Turn  poker.Card    `json:"turn"`
	River poker.Card    `json:"river"`
}

// Cards returns the board in dealing order
func (b Board) Cards() []poker.Card {
	return []poker.Card{b.Flop[0], b.Flop[1], b.Flop[2], b.Turn, b.River}
}

// BoardFromCards builds a board from five cards
func BoardFromCards(cards []poker.Card) (Board, error) {
	if len(cards) != 5 {
		return Board{}, fmt.Errorf("showdown needs 5 board cards, got %d", len(cards))
	}
	return Board{Flop: [3]poker.Card{cards[0], cards[1], cards[2]}, Turn: cards[3], River: cards[4]}, nil
}

// Opponent is a named opponent and their hole cards
type Opponent struct {
	Name string        `json:"name"`
	Hand [2]poker.Card `json:"hand"`
}

// Input describes the hand to settle
type Input struct {
	HeroHand   [2]poker.Card `json:"heroHand"`
	Opponents  []Opponent    `json:"opponents"`
	Board      Board         `json:"board"`
	HeroFolded bool          `json:"heroFolded"`
	HeroAction coach.Action  `json:"heroAction"`
}

// Player is one participant's best hand on the final board
type Player struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	IsHero     bool                 `json:"isHero"`
	Hand       [2]poker.Card        `json:"hand"`
	Evaluation poker.HandEvaluation `json:"evaluation"`
}

// Result is the settled showdown
type Result struct {
	FinalBoard      Board        `json:"finalBoard"`
	Players         []Player     `json:"players"`
	Winners         []Player     `json:"winners"`
	ActiveWinners   []Player     `json:"activeWinners"`
	HeroWouldResult Outcome      `json:"heroWouldResult"`
	HeroFolded      bool         `json:"heroFolded"`
	HeroAction      coach.Action `json:"heroAction"`
}

// Resolve evaluates every player on the board. Winners are taken over all
// players, the hero included even after a fold; ActiveWinners leave out a
// folded hero.
func Resolve(in Input) Result {
	board := in.Board.Cards()

	players := make([]Player, 0, len(in.Opponents)+1)
	players = append(players, newPlayer(HeroID, "You", true, in.HeroHand, board))
	taken := map[string]bool{HeroID: true}
	for i, opp := range in.Opponents {
		id, name := opp.Name, opp.Name
		if id == "" {
			id, name = fmt.Sprintf("opp-%d", i), fmt.Sprintf("Opp %d", i+1)
		}
		id = uniqueID(taken, id)
		players = append(players, newPlayer(id, name, false, opp.Hand, board))
	}

	winners := best(players)
	outcome := Lose
	for _, w := range winners {
		if w.IsHero {
			outcome = Win
			if len(winners) > 1 {
				outcome = Chop
			}
		}
	}

	active := players
	if in.HeroFolded {
		active = players[1:]
	}

	return Result{
		FinalBoard:      in.Board,
		Players:         players,
		Winners:         winners,
		ActiveWinners:   best(active),
		HeroWouldResult: outcome,
		HeroFolded:      in.HeroFolded,
		HeroAction:      in.HeroAction,
	}
}

func newPlayer(id, name string, hero bool, hand [2]poker.Card, board []poker.Card) Player {
	cards := make([]poker.Card, 0, 7)
	cards = append(cards, hand[:]...)
	cards = append(cards, board...)
	return Player{ID: id, Name: name, IsHero: hero, Hand: hand, Evaluation: poker.Evaluate(cards)}
}

// uniqueID returns id, suffixed with -2, -3 and so on when already taken
func uniqueID(taken map[string]bool, id string) string {
	base := id
	for n := 2; taken[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	taken[id] = true
	return id
}

// best returns every player whose hand ties for the strongest, never nil
func best(players []Player) []Player {
	out := make([]Player, 0, 1)
	for _, p := range players {
		if len(out) == 0 {
			out = append(out, p)
			continue
		}
		switch poker.Compare(p.Evaluation, out[0].Evaluation) {
		case 1:
			out = []Player{p}
		case 0:
			out = append(out, p)
		}
	}
	return out
}
