package classification

import (
	"slices"

	"github.com/lox/pokercoach/poker"
)

// Wetness represents how coordinated a board is, from dry to very wet
type Wetness int

const (
	Dry Wetness = iota
	SemiWet
	Wet
	VeryWet
)

func (w Wetness) String() string {
	switch w {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	case VeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

// BoardTexture summarises the community cards
type BoardTexture struct {
	Cards        int
	MaxSuitCount int
	SuitPaired   bool // some suit appears at least twice
	Monotone     bool // three or more cards, one suit
	Connected    bool // two distinct ranks within two of each other
	Paired       bool
	HighCards    int // T through A
	Wetness      Wetness

	// Distinct board ranks, highest first
	Ranks []int
}

// Top returns the highest board rank, or 0 on an empty board
func (t BoardTexture) Top() int {
	if len(t.Ranks) == 0 {
		return 0
	}
	return t.Ranks[0]
}

// Second returns the second-highest distinct board rank, or 0
func (t BoardTexture) Second() int {
	if len(t.Ranks) < 2 {
		return 0
	}
	return t.Ranks[1]
}

// Bottom returns the lowest board rank, or 0 on an empty board
func (t BoardTexture) Bottom() int {
	if len(t.Ranks) == 0 {
		return 0
	}
	return t.Ranks[len(t.Ranks)-1]
}

// Descriptors lists the texture features in reading order
func (t BoardTexture) Descriptors() []string {
	var out []string
	switch {
	case t.Monotone:
		out = append(out, "monotone")
	case t.MaxSuitCount >= 3:
		out = append(out, "three-flush")
	case t.SuitPaired:
		out = append(out, "two-tone")
	}
	if t.Connected {
		out = append(out, "connected")
	}
	if t.Paired {
		out = append(out, "paired")
	}
	return out
}

// AnalyzeBoard inspects suit and rank coordination of the visible board
func AnalyzeBoard(board []poker.Card) BoardTexture {
	t := BoardTexture{Cards: len(board)}
	if len(board) == 0 {
		return t
	}

	var suitCounts [4]int
	rankCounts := make(map[int]int, len(board))
	for _, c := range board {
		suitCounts[c.Suit]++
		rankCounts[int(c.Rank)]++
		if c.Rank >= poker.Ten {
			t.HighCards++
		}
	}

	suits := 0
	for _, n := range suitCounts {
		if n > 0 {
			suits++
		}
		t.MaxSuitCount = max(t.MaxSuitCount, n)
	}
	t.SuitPaired = t.MaxSuitCount >= 2
	t.Monotone = suits == 1 && len(board) >= 3

	for r, n := range rankCounts {
		t.Ranks = append(t.Ranks, r)
		if n >= 2 {
			t.Paired = true
		}
	}
	slices.SortFunc(t.Ranks, func(a, b int) int { return b - a })

	for i := 1; i < len(t.Ranks); i++ {
		if t.Ranks[i-1]-t.Ranks[i] <= 2 {
			t.Connected = true
			break
		}
	}

	t.Wetness = wetness(t)
	return t
}

func wetness(t BoardTexture) Wetness {
	if t.Cards < 3 {
		return Dry
	}

	var score int
	switch {
	case t.Monotone, t.MaxSuitCount >= 4:
		score += 4
	case t.MaxSuitCount == 3:
		score += 3
	case t.MaxSuitCount == 2:
		score++
	}

	switch run := longestRun(t.Ranks); {
	case run >= 4:
		score += 4
	case run == 3:
		score += 3
	case run == 2:
		score++
	}

	if t.Paired {
		score++
	}
	if t.HighCards >= 3 {
		score++
	}

	switch {
	case score <= 0:
		return Dry
	case score <= 3:
		return SemiWet
	case score <= 5:
		return Wet
	default:
		return VeryWet
	}
}

// longestRun counts the longest run of consecutive ranks, letting an ace
// connect below a deuce.
func longestRun(ranksDesc []int) int {
	if len(ranksDesc) == 0 {
		return 0
	}
	ranks := slices.Clone(ranksDesc)
	if ranks[0] == int(poker.Ace) {
		ranks = append(ranks, 1)
	}
	best, run := 1, 1
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1]-ranks[i] == 1 {
			run++
			best = max(best, run)
		} else {
			run = 1
		}
	}
	return best
}
