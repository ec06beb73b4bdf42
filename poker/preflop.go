package poker

import "fmt"

// PreflopTier is the coarse strength band of a starting hand
type PreflopTier string

const (
	TierPremium     PreflopTier = "premium"
	TierStrong      PreflopTier = "strong"
	TierSpeculative PreflopTier = "speculative"
	TierTrash       PreflopTier = "trash"
)

// PreflopProfile describes a two-card starting hand independent of the board.
// EquityHint is an approximate percentage against one random hand.
type PreflopProfile struct {
	Tier       PreflopTier `json:"tier"`
	Strength   int         `json:"strength"`
	EquityHint int         `json:"equityHint"`
	Label      string      `json:"label"`
}

// Notation returns the starting-hand class, e.g. "AKs", "QJo" or "77".
func Notation(a, b Card) string {
	high, low := a, b
	if low.Rank > high.Rank {
		high, low = low, high
	}
	switch {
	case high.Rank == low.Rank:
		return high.Rank.String() + low.Rank.String()
	case high.Suit == low.Suit:
		return high.Rank.String() + low.Rank.String() + "s"
	default:
		return high.Rank.String() + low.Rank.String() + "o"
	}
}

// ProfilePreflop classifies two hole cards. The branches are checked in order
// and the first match wins. Broadway means both cards are Jack or better.
func ProfilePreflop(a, b Card) PreflopProfile {
	high, low := int(a.Rank), int(b.Rank)
	if low > high {
		high, low = low, high
	}
	suited := a.Suit == b.Suit
	gap := high - low
	broadway := low >= int(Jack)
	ace := high == int(Ace)

	switch {
	case gap == 0:
		return pocketPair(high)

	case suited && broadway:
		if ace && low == int(King) {
			return profile(TierPremium, 90, 68, "Big slick suited")
		}
		sum := high + low - 22
		return profile(TierStrong, 70+sum*2, 58+sum*2, "Suited broadway")

	case broadway:
		if ace && low == int(King) {
			return profile(TierPremium, 84, 65, "Big slick")
		}
		sum := high + low - 22
		strength := 64 + sum*2
		return profile(tierFor(strength), strength, 55+sum*2, "Offsuit broadway")

	case suited && ace && low >= 9:
		strength := 70 - (10-low)*2
		return profile(tierFor(strength), strength, 59-(10-low)*2, "Suited ace")

	case suited && ace && low >= 5:
		return profile(TierSpeculative, 62+(low-5), 53+(low-5), "Suited ace with wheel potential")

	case ace && low >= 10:
		return profile(TierSpeculative, 60, 56, "Ace with a decent kicker")

	case suited && gap == 1 && high >= 9:
		return profile(TierSpeculative, 64+(high-9)*2, 52+(high-9)*2, "High suited connector")

	case suited && gap <= 2 && high >= 8:
		label := "Suited connector"
		if gap == 2 {
			label = "Suited one-gapper"
		}
		return profile(TierSpeculative, 60+(high-8)-(gap-1)*2, 47+(high-8)-(gap-1)*2, label)

	case suited && low >= 7 && gap <= 3:
		return profile(TierSpeculative, 58-(gap-1), 44+(high-7), "Suited cards")

	case low >= 8 && high >= int(Queen):
		return profile(TierSpeculative, 52+(high+low-20), 46+(high+low-20), "Playable high cards")

	default:
		return profile(TierTrash, 20+high+low, 28+(high+low)/3, "Weak holding")
	}
}

func pocketPair(rank int) PreflopProfile {
	hint := 82 - (int(Ace)-rank)*3
	name := Rank(rank).Label()
	switch {
	case rank >= int(King):
		return profile(TierPremium, 95-(int(Ace)-rank)*3, hint, fmt.Sprintf("Premium pocket pair (%ss)", name))
	case rank >= int(Ten):
		return profile(TierStrong, 86-(int(Queen)-rank)*3, hint, fmt.Sprintf("High pocket pair (%ss)", name))
	case rank >= int(Seven):
		return profile(TierStrong, 74-(int(Nine)-rank)*2, hint, fmt.Sprintf("Medium pocket pair (%ss)", name))
	default:
		return profile(TierSpeculative, 62-(int(Six)-rank), hint, fmt.Sprintf("Small pocket pair (%ss)", name))
	}
}

func tierFor(strength int) PreflopTier {
	if strength >= 70 {
		return TierStrong
	}
	return TierSpeculative
}

func profile(tier PreflopTier, strength, hint int, label string) PreflopProfile {
	return PreflopProfile{
		Tier:       tier,
		Strength:   clamp(strength, 0, 100),
		EquityHint: clamp(hint, 0, 100),
		Label:      label,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
