package poker

import (
	"fmt"
	"slices"
)

// HandCategory enumerates the categories of poker hands ordered from weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories lists every hand category from weakest to strongest
var Categories = [...]HandCategory{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush,
}

// String returns the wire name of the category
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "HIGH_CARD"
	case OnePair:
		return "ONE_PAIR"
	case TwoPair:
		return "TWO_PAIR"
	case ThreeOfAKind:
		return "THREE_OF_A_KIND"
	case Straight:
		return "STRAIGHT"
	case Flush:
		return "FLUSH"
	case FullHouse:
		return "FULL_HOUSE"
	case FourOfAKind:
		return "FOUR_OF_A_KIND"
	case StraightFlush:
		return "STRAIGHT_FLUSH"
	default:
		return "UNKNOWN"
	}
}

// Name returns a human-readable category name
func (c HandCategory) Name() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the wire name
func (c HandCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a wire name produced by MarshalText
func (c *HandCategory) UnmarshalText(text []byte) error {
	for _, category := range Categories {
		if category.String() == string(text) {
			*c = category
			return nil
		}
	}
	return fmt.Errorf("unknown hand category %q", text)
}

// HandEvaluation is the ranked value of a 5-7 card set. TieBreak starts with
// the category and continues with the discriminating ranks in priority order.
type HandEvaluation struct {
	Category HandCategory `json:"category"`
	TieBreak []int        `json:"tieBreak"`
	Label    string       `json:"label"`
}

// Evaluate ranks the best five-card hand contained in cards. Callers must pass
// at least five cards; seven is the usual hole-plus-board case.
func Evaluate(cards []Card) HandEvaluation {
	values := make([]int, len(cards))
	bySuit := make(map[Suit][]int, 4)
	counts := make(map[int]int, len(cards))
	for i, c := range cards {
		v := int(c.Rank)
		values[i] = v
		bySuit[c.Suit] = append(bySuit[c.Suit], v)
		counts[v]++
	}
	slices.SortFunc(values, descending)

	var flushValues []int
	for _, suit := range Suits {
		if len(bySuit[suit]) >= 5 {
			flushValues = slices.Clone(bySuit[suit])
			slices.SortFunc(flushValues, descending)
			break
		}
	}

	var quads, trips, pairs []int
	for _, v := range uniqueDesc(values) {
		switch counts[v] {
		case 4:
			quads = append(quads, v)
		case 3:
			trips = append(trips, v)
		case 2:
			pairs = append(pairs, v)
		}
	}

	if flushValues != nil {
		if top, ok := straightTop(uniqueDesc(flushValues)); ok {
			return build(StraightFlush, top)
		}
	}

	if len(quads) > 0 {
		return build(FourOfAKind, append([]int{quads[0]}, kickers(values, 1, quads[0])...)...)
	}

	if len(trips) > 0 && (len(pairs) > 0 || len(trips) > 1) {
		pair := 0
		if len(trips) > 1 {
			pair = trips[1]
		} else {
			pair = pairs[0]
		}
		return build(FullHouse, trips[0], pair)
	}

	if flushValues != nil {
		return build(Flush, flushValues[:5]...)
	}

	if top, ok := straightTop(uniqueDesc(values)); ok {
		return build(Straight, top)
	}

	if len(trips) > 0 {
		return build(ThreeOfAKind, append([]int{trips[0]}, kickers(values, 2, trips[0])...)...)
	}

	if len(pairs) >= 2 {
		high, low := pairs[0], pairs[1]
		return build(TwoPair, append([]int{high, low}, kickers(values, 1, high, low)...)...)
	}

	if len(pairs) == 1 {
		return build(OnePair, append([]int{pairs[0]}, kickers(values, 3, pairs[0])...)...)
	}

	return build(HighCard, kickers(values, 5)...)
}

// build assembles the tie-break vector and label for a category.
func build(category HandCategory, ranks ...int) HandEvaluation {
	tieBreak := make([]int, 0, len(ranks)+1)
	tieBreak = append(tieBreak, int(category))
	tieBreak = append(tieBreak, ranks...)

	at := func(i int) string {
		if i < len(ranks) {
			return Rank(ranks[i]).Label()
		}
		return "?"
	}

	var label string
	switch category {
	case StraightFlush:
		label = fmt.Sprintf("%s-high straight flush", at(0))
	case FourOfAKind:
		label = fmt.Sprintf("Quad %ss", at(0))
		if len(ranks) > 1 {
			label += fmt.Sprintf(" with %s kicker", at(1))
		}
	case FullHouse:
		label = fmt.Sprintf("Full house, %ss full of %ss", at(0), at(1))
	case Flush:
		label = fmt.Sprintf("%s-high flush", at(0))
	case Straight:
		label = fmt.Sprintf("%s-high straight", at(0))
	case ThreeOfAKind:
		label = fmt.Sprintf("Trips %ss", at(0))
	case TwoPair:
		label = fmt.Sprintf("Two pair, %ss and %ss", at(0), at(1))
	case OnePair:
		label = fmt.Sprintf("Pair of %ss", at(0))
	case HighCard:
		label = fmt.Sprintf("%s-high", at(0))
	}

	return HandEvaluation{Category: category, TieBreak: tieBreak, Label: label}
}

// Compare orders two evaluations: 1 if a is stronger, -1 if b is stronger, 0 on a chop.
func Compare(a, b HandEvaluation) int {
	n := max(len(a.TieBreak), len(b.TieBreak))
	for i := range n {
		av, bv := 0, 0
		if i < len(a.TieBreak) {
			av = a.TieBreak[i]
		}
		if i < len(b.TieBreak) {
			bv = b.TieBreak[i]
		}
		switch {
		case av > bv:
			return 1
		case av < bv:
			return -1
		}
	}
	return 0
}

// Beats reports whether e is strictly stronger than other
func (e HandEvaluation) Beats(other HandEvaluation) bool {
	return Compare(e, other) > 0
}

// StraightTop returns the top rank of the best straight in ranks, treating an
// ace as both 14 and 1. The wheel returns 5.
func StraightTop(ranks []int) (int, bool) {
	return straightTop(uniqueDesc(ranks))
}

// straightTop expects unique ranks sorted descending.
func straightTop(uniq []int) (int, bool) {
	if len(uniq) > 0 && uniq[0] == int(Ace) {
		uniq = append(slices.Clone(uniq), 1)
	}
	run := 1
	for i := 1; i < len(uniq); i++ {
		if uniq[i] == uniq[i-1]-1 {
			run++
			if run >= 5 {
				return uniq[i] + 4, true
			}
		} else {
			run = 1
		}
	}
	return 0, false
}

// kickers returns the top n distinct ranks not in used.
func kickers(valuesDesc []int, n int, used ...int) []int {
	out := make([]int, 0, n)
	for _, v := range uniqueDesc(valuesDesc) {
		if len(out) == n {
			break
		}
		if slices.Contains(used, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func uniqueDesc(values []int) []int {
	out := slices.Clone(values)
	slices.SortFunc(out, descending)
	return slices.Compact(out)
}

func descending(a, b int) int {
	return b - a
}
