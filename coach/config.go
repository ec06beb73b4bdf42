package coach

import (
	"fmt"

	"github.com/lox/pokercoach/poker"
)

// CategoryTable assigns an integer to every hand category
type CategoryTable struct {
	HighCard      int `hcl:"high_card,optional"`
	OnePair       int `hcl:"one_pair,optional"`
	TwoPair       int `hcl:"two_pair,optional"`
	ThreeOfAKind  int `hcl:"three_of_a_kind,optional"`
	Straight      int `hcl:"straight,optional"`
	Flush         int `hcl:"flush,optional"`
	FullHouse     int `hcl:"full_house,optional"`
	FourOfAKind   int `hcl:"four_of_a_kind,optional"`
	StraightFlush int `hcl:"straight_flush,optional"`
}

// Get returns the entry for a category
func (t CategoryTable) Get(c poker.HandCategory) int {
	switch c {
	case poker.HighCard:
		return t.HighCard
	case poker.OnePair:
		return t.OnePair
	case poker.TwoPair:
		return t.TwoPair
	case poker.ThreeOfAKind:
		return t.ThreeOfAKind
	case poker.Straight:
		return t.Straight
	case poker.Flush:
		return t.Flush
	case poker.FullHouse:
		return t.FullHouse
	case poker.FourOfAKind:
		return t.FourOfAKind
	case poker.StraightFlush:
		return t.StraightFlush
	default:
		return 0
	}
}

// Config holds every constant of the decision heuristic. Scalars decode from
// the "scoring" HCL block; the two tables decode from their own blocks.
type Config struct {
	// Made-hand equity adjustments, in equity points.
	TopPairEquityBonus      float64 `hcl:"top_pair_equity_bonus,optional"`
	TopPairEquityCap        float64 `hcl:"top_pair_equity_cap,optional"`
	SecondPairEquityBonus   float64 `hcl:"second_pair_equity_bonus,optional"`
	MiddlePairEquityPenalty float64 `hcl:"middle_pair_equity_penalty,optional"`
	LowPairEquityPenalty    float64 `hcl:"low_pair_equity_penalty,optional"`
	TopTwoPairEquityBonus   float64 `hcl:"top_two_pair_equity_bonus,optional"`
	TopTwoPairEquityCap     float64 `hcl:"top_two_pair_equity_cap,optional"`

	// Equity removed for cards still to come.
	FlopDiscount  float64 `hcl:"flop_discount,optional"`
	TurnDiscount  float64 `hcl:"turn_discount,optional"`
	RiverDiscount float64 `hcl:"river_discount,optional"`

	// Baseline recommendation when facing a bet: raise above both RaiseEdge
	// and RaiseEquity, call above CallEdge, otherwise fold.
	RaiseEdge   float64 `hcl:"raise_edge,optional"`
	RaiseEquity float64 `hcl:"raise_equity,optional"`
	CallEdge    float64 `hcl:"call_edge,optional"`

	// Baseline when unopened: raise once equity plus position exceeds this.
	OpenRaiseEquity float64 `hcl:"open_raise_equity,optional"`

	// Raise sizing in big blinds.
	FacingRaiseMultiplier float64 `hcl:"facing_raise_multiplier,optional"`
	MinFacingRaise        float64 `hcl:"min_facing_raise,optional"`
	OpenRaisePotFraction  float64 `hcl:"open_raise_pot_fraction,optional"`
	MinOpenRaise          float64 `hcl:"min_open_raise,optional"`

	// Positional bonus for BTN/CO and for HJ.
	LatePositionBonus float64 `hcl:"late_position_bonus,optional"`
	HijackBonus       float64 `hcl:"hijack_bonus,optional"`

	// Preflop override strength bands and sizing.
	PreflopRaiseStrength    int     `hcl:"preflop_raise_strength,optional"`
	PreflopMixedStrength    int     `hcl:"preflop_mixed_strength,optional"`
	PreflopCallStrength     int     `hcl:"preflop_call_strength,optional"`
	PreflopMixedEdge        float64 `hcl:"preflop_mixed_edge,optional"`
	PreflopFacingMultiplier float64 `hcl:"preflop_facing_multiplier,optional"`
	PreflopOpenPotFraction  float64 `hcl:"preflop_open_pot_fraction,optional"`

	// Score composition.
	ScoreBase      float64 `hcl:"score_base,optional"`
	ScoreLift      float64 `hcl:"score_lift,optional"`
	EdgeWeight     float64 `hcl:"edge_weight,optional"`
	MadeHandWeight float64 `hcl:"made_hand_weight,optional"`

	// Made-hand boost extras on top of the category table.
	BigTwoPairBonus int `hcl:"big_two_pair_bonus,optional"`
	BigTwoPairRank  int `hcl:"big_two_pair_rank,optional"`
	TopPairBoost    int `hcl:"top_pair_boost,optional"`
	SecondPairBoost int `hcl:"second_pair_boost,optional"`

	// Vulnerability penalties.
	MiddlePairVulnerability int `hcl:"middle_pair_vulnerability,optional"`
	LowPairVulnerability    int `hcl:"low_pair_vulnerability,optional"`
	HighCardVulnerability   int `hcl:"high_card_vulnerability,optional"`

	// Board texture penalties.
	SuitedBoardPenalty    int `hcl:"suited_board_penalty,optional"`
	ConnectedBoardPenalty int `hcl:"connected_board_penalty,optional"`
	FlopTexturePenalty    int `hcl:"flop_texture_penalty,optional"`
	TurnTexturePenalty    int `hcl:"turn_texture_penalty,optional"`

	// Discipline penalties when facing a bet.
	PriceMargin       float64 `hcl:"price_margin,optional"`
	PricePenalty      float64 `hcl:"price_penalty,optional"`
	OverbetPotPct     float64 `hcl:"overbet_pot_pct,optional"`
	OverbetEquity     float64 `hcl:"overbet_equity,optional"`
	OverbetPenalty    float64 `hcl:"overbet_penalty,optional"`
	AggressionCount   int     `hcl:"aggression_count,optional"`
	AggressionEquity  float64 `hcl:"aggression_equity,optional"`
	AggressionPenalty float64 `hcl:"aggression_penalty,optional"`

	// Alignment between hero action and recommendation.
	AlignMatchBonus   float64 `hcl:"align_match_bonus,optional"`
	OverRaisePenalty  float64 `hcl:"over_raise_penalty,optional"`
	UnderRaisePenalty float64 `hcl:"under_raise_penalty,optional"`
	MismatchPenalty   float64 `hcl:"mismatch_penalty,optional"`

	// Preflop starting-hand discipline bonuses.
	PreflopFoldTrashBonus       float64 `hcl:"preflop_fold_trash_bonus,optional"`
	PreflopRaisePremiumBonus    float64 `hcl:"preflop_raise_premium_bonus,optional"`
	PreflopRaiseStrongBonus     float64 `hcl:"preflop_raise_strong_bonus,optional"`
	PreflopCallSpeculativeBonus float64 `hcl:"preflop_call_speculative_bonus,optional"`
	PreflopCallStrongBonus      float64 `hcl:"preflop_call_strong_bonus,optional"`

	// Score floors.
	MatchFloor        int `hcl:"match_floor,optional"`
	TrashFoldFloor    int `hcl:"trash_fold_floor,optional"`
	StrongRaiseFloor  int `hcl:"strong_raise_floor,optional"`
	PremiumRaiseFloor int `hcl:"premium_raise_floor,optional"`

	// FallbackScore replaces a non-finite score.
	FallbackScore int `hcl:"fallback_score,optional"`

	// Inclusive lower bounds of each verdict.
	PerfectScore  int `hcl:"perfect_score,optional"`
	GreatScore    int `hcl:"great_score,optional"`
	GoodScore     int `hcl:"good_score,optional"`
	NeutralScore  int `hcl:"neutral_score,optional"`
	NotIdealScore int `hcl:"not_ideal_score,optional"`

	MaxReasons int `hcl:"max_reasons,optional"`

	CategoryEquity CategoryTable
	MadeHandBonus  CategoryTable
}

// DefaultConfig returns the standard coaching heuristic
func DefaultConfig() Config {
	return Config{
		TopPairEquityBonus:      12,
		TopPairEquityCap:        86,
		SecondPairEquityBonus:   6,
		MiddlePairEquityPenalty: 4,
		LowPairEquityPenalty:    10,
		TopTwoPairEquityBonus:   6,
		TopTwoPairEquityCap:     94,

		FlopDiscount:  6,
		TurnDiscount:  3,
		RiverDiscount: 0,

		RaiseEdge:       10,
		RaiseEquity:     55,
		CallEdge:        -5,
		OpenRaiseEquity: 70,

		FacingRaiseMultiplier: 2.2,
		MinFacingRaise:        4,
		OpenRaisePotFraction:  0.55,
		MinOpenRaise:          3,

		LatePositionBonus: 4,
		HijackBonus:       2,

		PreflopRaiseStrength:    80,
		PreflopMixedStrength:    70,
		PreflopCallStrength:     58,
		PreflopMixedEdge:        -8,
		PreflopFacingMultiplier: 2.3,
		PreflopOpenPotFraction:  0.65,

		ScoreBase:      52,
		ScoreLift:      10,
		EdgeWeight:     0.35,
		MadeHandWeight: 0.45,

		BigTwoPairBonus: 6,
		BigTwoPairRank:  int(poker.Jack),
		TopPairBoost:    4,
		SecondPairBoost: 2,

		MiddlePairVulnerability: 6,
		LowPairVulnerability:    8,
		HighCardVulnerability:   10,

		SuitedBoardPenalty:    3,
		ConnectedBoardPenalty: 3,
		FlopTexturePenalty:    2,
		TurnTexturePenalty:    1,

		PriceMargin:       10,
		PricePenalty:      12,
		OverbetPotPct:     60,
		OverbetEquity:     50,
		OverbetPenalty:    6,
		AggressionCount:   2,
		AggressionEquity:  55,
		AggressionPenalty: 4,

		AlignMatchBonus:   14,
		OverRaisePenalty:  6,
		UnderRaisePenalty: 5,
		MismatchPenalty:   14,

		PreflopFoldTrashBonus:       18,
		PreflopRaisePremiumBonus:    22,
		PreflopRaiseStrongBonus:     16,
		PreflopCallSpeculativeBonus: 8,
		PreflopCallStrongBonus:      10,

		MatchFloor:        50,
		TrashFoldFloor:    72,
		StrongRaiseFloor:  72,
		PremiumRaiseFloor: 82,

		FallbackScore: 60,

		PerfectScore:  95,
		GreatScore:    80,
		GoodScore:     60,
		NeutralScore:  50,
		NotIdealScore: 30,

		MaxReasons: 6,

		CategoryEquity: CategoryTable{
			HighCard:      25,
			OnePair:       45,
			TwoPair:       62,
			ThreeOfAKind:  72,
			Straight:      80,
			Flush:         85,
			FullHouse:     92,
			FourOfAKind:   97,
			StraightFlush: 100,
		},
		MadeHandBonus: CategoryTable{
			HighCard:      0,
			OnePair:       4,
			TwoPair:       8,
			ThreeOfAKind:  12,
			Straight:      15,
			Flush:         17,
			FullHouse:     20,
			FourOfAKind:   22,
			StraightFlush: 24,
		},
	}
}

// Validate checks that thresholds are ordered and weights are usable
func (c Config) Validate() error {
	if c.EdgeWeight < 0 || c.MadeHandWeight < 0 {
		return fmt.Errorf("score weights must be non-negative (edge=%v made_hand=%v)", c.EdgeWeight, c.MadeHandWeight)
	}
	if !(c.PerfectScore > c.GreatScore && c.GreatScore > c.GoodScore &&
		c.GoodScore > c.NeutralScore && c.NeutralScore > c.NotIdealScore && c.NotIdealScore > 0) {
		return fmt.Errorf("verdict thresholds must strictly decrease: %d/%d/%d/%d/%d",
			c.PerfectScore, c.GreatScore, c.GoodScore, c.NeutralScore, c.NotIdealScore)
	}
	if c.PerfectScore > 100 {
		return fmt.Errorf("perfect_score must be at most 100, got %d", c.PerfectScore)
	}
	if !(c.PreflopRaiseStrength > c.PreflopMixedStrength && c.PreflopMixedStrength > c.PreflopCallStrength) {
		return fmt.Errorf("preflop strength bands must strictly decrease: %d/%d/%d",
			c.PreflopRaiseStrength, c.PreflopMixedStrength, c.PreflopCallStrength)
	}
	if c.MaxReasons < 1 {
		return fmt.Errorf("max_reasons must be at least 1, got %d", c.MaxReasons)
	}
	if c.FallbackScore < 0 || c.FallbackScore > 100 {
		return fmt.Errorf("fallback_score must be within 0-100, got %d", c.FallbackScore)
	}
	return nil
}
