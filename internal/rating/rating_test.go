package rating

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  int
	}{
		{100, 500},
		{99, 425},
		{96, 425},
		{95, 330},
		{90, 330},
		{89, 250},
		{75, 250},
		{74, 185},
		{55, 185},
		{54, -50},
		{40, -50},
		{39, -70},
		{20, -70},
		{19, -90},
		{11, -90},
		{10, -150},
		{0, -150},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseDelta(tt.score), "score %d", tt.score)
	}
}

func TestDeltaFromScore(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 1))
	for range 500 {
		d := DeltaFromScore(100, rng)
		assert.GreaterOrEqual(t, d, 400)
		assert.LessOrEqual(t, d, 600)

		assert.Equal(t, -50, DeltaFromScore(45, rng))
	}

	lo, hi := GainRange(5)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 7, hi)
}

func TestTierFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bronze", TierFor(0).Name)
	assert.Equal(t, "Bronze", TierFor(1499).Name)
	assert.Equal(t, "Silver", TierFor(1500).Name)
	assert.Equal(t, "Legendary", TierFor(14999).Name)
	assert.Equal(t, "Champion", TierFor(1_000_000).Name)
	assert.Equal(t, "Bronze", TierFor(-10).Name)
}

func TestProgressFor(t *testing.T) {
	t.Parallel()

	p := ProgressFor(3300 + 1099)
	assert.Equal(t, "Gold", p.Current.Name)
	assert.Equal(t, "Diamond", p.Next.Name)
	assert.InDelta(t, 0.5, p.Pct, 0.001)

	top := ProgressFor(20000)
	assert.Equal(t, "Champion", top.Current.Name)
	assert.Equal(t, "Champion", top.Next.Name)
	assert.Equal(t, 1.0, top.Pct)

	assert.Equal(t, 0, Clamp(-40))
	assert.Equal(t, 12, Clamp(12))
}
