// Package rating converts coaching scores into rating changes and places a
// rating within the tier ladder.
package rating

import (
	"math"
	rand "math/rand/v2"
)

// Tier is a named rating band
type Tier struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max"` // inclusive; the top tier is unbounded
}

// Unbounded reports whether the tier has no upper limit
func (t Tier) Unbounded() bool {
	return t.Max == math.MaxInt
}

// Tiers lists the ladder from lowest to highest
var Tiers = []Tier{
	{Name: "Bronze", Min: 0, Max: 1499},
	{Name: "Silver", Min: 1500, Max: 3299},
	{Name: "Gold", Min: 3300, Max: 5499},
	{Name: "Diamond", Min: 5500, Max: 8099},
	{Name: "Mythic", Min: 8100, Max: 11299},
	{Name: "Legendary", Min: 11300, Max: 14999},
	{Name: "Champion", Min: 15000, Max: math.MaxInt},
}

// band maps a minimum score to a base delta
type band struct {
	score     int
	exclusive bool
	delta     int
}

var bands = []band{
	{score: 100, delta: 500},
	{score: 95, exclusive: true, delta: 425},
	{score: 90, delta: 330},
	{score: 75, delta: 250},
	{score: 55, delta: 185},
	{score: 40, delta: -50},
	{score: 20, delta: -70},
	{score: 11, delta: -90},
}

const floorDelta = -150

// BaseDelta returns the unrandomised rating change for a score
func BaseDelta(score int) int {
	for _, b := range bands {
		if score > b.score || (!b.exclusive && score == b.score) {
			return b.delta
		}
	}
	return floorDelta
}

// DeltaFromScore returns the rating change for a score. Gains are drawn from
// GainRange; losses are fixed.
func DeltaFromScore(score int, rng *rand.Rand) int {
	base := BaseDelta(score)
	if base <= 0 {
		return base
	}
	lo, hi := GainRange(base)
	return lo + rng.IntN(hi-lo+1)
}

// GainRange returns the inclusive bounds a positive base delta is drawn from
func GainRange(base int) (lo, hi int) {
	spread := max(2, int(math.Round(float64(base)*0.2)))
	return max(1, base-spread), base + spread
}

// Clamp keeps a rating non-negative
func Clamp(rating int) int {
	return max(0, rating)
}

// TierFor returns the tier containing rating
func TierFor(rating int) Tier {
	for _, t := range Tiers {
		if rating >= t.Min && rating <= t.Max {
			return t
		}
	}
	return Tiers[0]
}

// Progress describes where a rating sits within its tier
type Progress struct {
	Current Tier    `json:"current"`
	Next    Tier    `json:"next"`
	Pct     float64 `json:"pct"`
}

// ProgressFor returns the tier, the next tier and the fraction of the way
// through the current tier. The top tier always reports full progress.
func ProgressFor(rating int) Progress {
	idx := 0
	for i, t := range Tiers {
		if rating >= t.Min && rating <= t.Max {
			idx = i
			break
		}
	}
	current := Tiers[idx]
	if current.Unbounded() {
		return Progress{Current: current, Next: current, Pct: 1}
	}

	span := float64(current.Max - current.Min)
	if span == 0 {
		span = 1
	}
	pct := math.Max(0, math.Min(1, float64(rating-current.Min)/span))
	return Progress{Current: current, Next: Tiers[idx+1], Pct: pct}
}
