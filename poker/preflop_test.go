package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfilePreflop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand     string
		tier     PreflopTier
		strength int
		hint     int
	}{
		{"AsAh", TierPremium, 95, 82},
		{"KdKc", TierPremium, 92, 79},
		{"QhQs", TierStrong, 86, 76},
		{"TdTc", TierStrong, 80, 70},
		{"7h7d", TierStrong, 70, 73},
		{"4c4d", TierSpeculative, 60, 76},
		{"AsKs", TierPremium, 90, 68},
		{"AhKd", TierPremium, 84, 65},
		{"7c2d", TierTrash, 29, 31},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			cards := MustParseCards(tt.hand)
			p := ProfilePreflop(cards[0], cards[1])
			assert.Equal(t, tt.tier, p.Tier)
			assert.Equal(t, tt.strength, p.Strength)
			if tt.tier == TierPremium || tt.tier == TierTrash {
				assert.Equal(t, tt.hint, p.EquityHint)
			}
			assert.NotEmpty(t, p.Label)
		})
	}
}

func TestProfilePreflopOrderIndependent(t *testing.T) {
	t.Parallel()

	var all []Card
	for _, s := range Suits {
		for r := Two; r <= Ace; r++ {
			all = append(all, NewCard(r, s))
		}
	}

	for i, a := range all {
		for _, b := range all[i+1:] {
			p, q := ProfilePreflop(a, b), ProfilePreflop(b, a)
			assert.Equal(t, p, q)
			assert.GreaterOrEqual(t, p.Strength, 0)
			assert.LessOrEqual(t, p.Strength, 100)
			assert.GreaterOrEqual(t, p.EquityHint, 0)
			assert.LessOrEqual(t, p.EquityHint, 100)
		}
	}
}

func TestProfilePreflopBranches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand string
		tier PreflopTier
	}{
		{"QsJs", TierStrong},
		{"As9s", TierSpeculative},
		{"As5s", TierSpeculative},
		{"AdTc", TierSpeculative},
		{"Th9h", TierSpeculative},
		{"9c7c", TierSpeculative},
		{"Js8s", TierSpeculative},
		{"Qd9c", TierSpeculative},
		{"9d4c", TierTrash},
	}
	for _, tt := range tests {
		cards := MustParseCards(tt.hand)
		assert.Equal(t, tt.tier, ProfilePreflop(cards[0], cards[1]).Tier, tt.hand)
	}
}

func TestNotation(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"AsKs": "AKs",
		"KsAd": "AKo",
		"7h7d": "77",
		"2cTc": "T2s",
	}
	for in, want := range cases {
		cards := MustParseCards(in)
		assert.Equal(t, want, Notation(cards[0], cards[1]), in)
	}
}
