// Package classification provides draw detection and board texture analysis
// for coaching decisions.
package classification

import (
	"github.com/lox/pokercoach/poker"
)

// DrawType represents the kind of improvement a hand is drawing to
type DrawType int

const (
	NoDraw DrawType = iota
	FlushDraw
	OpenEndedStraightDraw
	Gutshot
	ComboDraw
	SetDraw
	TripsDraw
	TwoPairDraw
)

func (dt DrawType) String() string {
	switch dt {
	case FlushDraw:
		return "flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case Gutshot:
		return "gutshot"
	case ComboDraw:
		return "combo draw"
	case SetDraw:
		return "set draw"
	case TripsDraw:
		return "trips draw"
	case TwoPairDraw:
		return "two pair draw"
	case NoDraw:
		return "no draw"
	default:
		return "unknown"
	}
}

// MarshalText encodes the draw name
func (dt DrawType) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText decodes a draw name produced by MarshalText
func (dt *DrawType) UnmarshalText(text []byte) error {
	for d := NoDraw; d <= TwoPairDraw; d++ {
		if d.String() == string(text) {
			*dt = d
			return nil
		}
	}
	*dt = NoDraw
	return nil
}

const (
	flushDrawOuts = 9
	openEndedOuts = 8
	gutshotOuts   = 4

	// comboOverlap approximates the cards that complete both the flush and
	// the straight. It is a fixed estimate, not an enumeration of those cards.
	comboOverlap = 1
)

// OutsResult is the outs count for the hero's best draw and the equity the
// rule of 4 and 2 assigns to it.
type OutsResult struct {
	Outs   int      `json:"correctOuts"`
	Equity int      `json:"equityApproxPct"`
	Draw   DrawType `json:"drawType"`
	Label  string   `json:"drawLabel"`
}

// EstimateOuts counts outs for hole cards against the visible board. It
// reports false preflop, before the flop is out, or when nothing improves.
func EstimateOuts(hole, board []poker.Card, street poker.Street) (OutsResult, bool) {
	if street == poker.Preflop || len(board) < 3 {
		return OutsResult{}, false
	}

	all := make([]poker.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)

	flush := hasFlushDraw(all)
	straight := detectStraightDraw(all)

	var result OutsResult
	switch {
	case flush && straight.outs > 0:
		result = OutsResult{
			Outs:  flushDrawOuts + straight.outs - comboOverlap,
			Draw:  ComboDraw,
			Label: "Combo draw (flush + straight)",
		}
	case flush:
		result = OutsResult{Outs: flushDrawOuts, Draw: FlushDraw, Label: "Flush draw"}
	case straight.outs > 0:
		result = OutsResult{Outs: straight.outs, Draw: straight.draw, Label: straight.label}
	default:
		made, ok := improvementOuts(hole, board)
		if !ok {
			return OutsResult{}, false
		}
		result = made
	}

	result.Outs = max(0, result.Outs)
	result.Equity = RuleOfFourAndTwo(result.Outs, street)
	return result, true
}

// RuleOfFourAndTwo converts outs into an equity percentage: four per out with
// two cards to come, two per out with one card to come.
func RuleOfFourAndTwo(outs int, street poker.Street) int {
	multiplier := 2
	if street == poker.Flop {
		multiplier = 4
	}
	return min(100, max(0, outs*multiplier))
}

// hasFlushDraw reports whether any suit appears exactly four times.
func hasFlushDraw(cards []poker.Card) bool {
	var counts [4]int
	for _, c := range cards {
		counts[c.Suit]++
	}
	for _, n := range counts {
		if n == 4 {
			return true
		}
	}
	return false
}

type straightDraw struct {
	outs  int
	draw  DrawType
	label string
}

// detectStraightDraw slides five-rank windows over the rank set, with the ace
// also counted as 1, and keeps the strongest window missing exactly one rank.
func detectStraightDraw(cards []poker.Card) straightDraw {
	var present [15]bool
	for _, c := range cards {
		present[c.Rank] = true
		if c.Rank == poker.Ace {
			present[1] = true
		}
	}

	best := straightDraw{draw: NoDraw, label: "No straight draw"}
	for start := 1; start <= 10; start++ {
		count, missing := 0, 0
		for v := start; v < start+5; v++ {
			if present[v] {
				count++
			} else {
				missing = v
			}
		}
		if count != 4 {
			continue
		}
		if missing == start || missing == start+4 {
			best = straightDraw{outs: openEndedOuts, draw: OpenEndedStraightDraw, label: "Open-ended straight draw"}
		} else if best.outs < openEndedOuts {
			best = straightDraw{outs: gutshotOuts, draw: Gutshot, label: "Gutshot straight draw"}
		}
	}
	return best
}

// improvementOuts counts outs for made hands with no flush or straight draw:
// pocket pairs to sets, paired hole cards to trips, and unpaired hole cards
// to two pair or a full house once a pair already exists.
func improvementOuts(hole, board []poker.Card) (OutsResult, bool) {
	var allCounts, boardCounts [15]int
	for _, c := range hole {
		allCounts[c.Rank]++
	}
	for _, c := range board {
		allCounts[c.Rank]++
		boardCounts[c.Rank]++
	}

	boardPaired := false
	for _, n := range boardCounts {
		if n >= 2 {
			boardPaired = true
			break
		}
	}

	var heroRanks []poker.Rank
	seen := map[poker.Rank]bool{}
	for _, c := range hole {
		if !seen[c.Rank] {
			seen[c.Rank] = true
			heroRanks = append(heroRanks, c.Rank)
		}
	}

	pairedWithBoard := false
	for _, r := range heroRanks {
		if boardCounts[r] > 0 {
			pairedWithBoard = true
		}
	}

	remaining := func(r poker.Rank) int {
		return max(0, 4-allCounts[r])
	}

	var setOuts, tripsOuts, twoPairOuts int
	pocketPair := len(hole) == 2 && hole[0].Rank == hole[1].Rank
	if pocketPair {
		setOuts = remaining(hole[0].Rank)
	}

	// Pocket pairs count these on top of their set outs: trips when the rank
	// is also on the board, a full house when the board is paired.
	for _, r := range heroRanks {
		rem := remaining(r)
		if rem == 0 {
			continue
		}
		switch {
		case boardCounts[r] > 0:
			tripsOuts += rem
		case boardPaired || pairedWithBoard:
			twoPairOuts += rem
		}
	}

	outs := setOuts + tripsOuts + twoPairOuts
	switch {
	case outs == 0:
		return OutsResult{}, false
	case setOuts > 0:
		return OutsResult{Outs: outs, Draw: SetDraw, Label: "Set draw"}, true
	case tripsOuts > 0:
		return OutsResult{Outs: outs, Draw: TripsDraw, Label: "Trips draw"}, true
	default:
		return OutsResult{Outs: outs, Draw: TwoPairDraw, Label: "Two pair / full house outs"}, true
	}
}
