package coach

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/classification"
	"github.com/lox/pokercoach/poker"
)

func hand(t *testing.T, s string) [2]poker.Card {
	t.Helper()
	cards, err := poker.ParseCards(s)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	return [2]poker.Card{cards[0], cards[1]}
}

func board(t *testing.T, s string) Board {
	t.Helper()
	cards, err := poker.ParseCards(s)
	require.NoError(t, err)
	street := poker.Preflop
	switch len(cards) {
	case 3:
		street = poker.Flop
	case 4:
		street = poker.Turn
	case 5:
		street = poker.River
	}
	return BoardUpTo(cards, street)
}

func TestPotOdds(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 33.33, PotOdds(10, &Facing{Type: MoveBet, Size: 5}), 0.01)
	assert.Zero(t, PotOdds(10, nil))
	assert.Zero(t, PotOdds(0, &Facing{Type: MoveBet, Size: 0}))
	assert.InDelta(t, 50.0, PotOdds(4, &Facing{Type: MoveRaise, Size: 4}), 0.0001)
}

func TestDecideComboDrawFacingBet(t *testing.T) {
	t.Parallel()

	s := TableSnapshot{
		HeroHand:        hand(t, "AsKs"),
		Board:           board(t, "Qs Js 2h"),
		Street:          poker.Flop,
		HeroPos:         Button,
		VillainPos:      BB,
		Pot:             10,
		Facing:          &Facing{Type: MoveBet, Size: 5},
		OpponentActions: []OpponentMove{{Name: "OppA", Action: MoveBet, Size: 5}},
	}

	result := Decide(s, Raise, nil)

	assert.Equal(t, Raise, result.BestAction)
	require.NotNil(t, result.RaiseSize)
	assert.Equal(t, 11.0, *result.RaiseSize)
	assert.Equal(t, 64.0, result.Equity)
	assert.InDelta(t, 33.33, result.PotOdds, 0.01)
	assert.Equal(t, 73, result.Score)
	assert.Equal(t, VerdictGood, result.Verdict)
	assert.Equal(t, []string{"pot-odds+", "draws", "value/semibluff"}, result.ConceptTags)

	require.Len(t, result.Reasons, 6)
	assert.Contains(t, result.Reasons[0], "Hand: As Ks on Qs Js 2h")
	assert.Equal(t, "Made hand: A-high.", result.Reasons[1])
	assert.Equal(t, "Board texture: two-tone, connected (semi-wet).", result.Reasons[2])
	assert.Equal(t, "Pot odds: 5 / (10 + 5) = 33.3% required equity.", result.Reasons[4])
	assert.Contains(t, result.Reasons[5], "Raising with As Ks vs Qs Js 2h")
}

func TestDecideTopPairAfterChecks(t *testing.T) {
	t.Parallel()

	s := TableSnapshot{
		HeroHand:        hand(t, "AhKd"),
		Board:           board(t, "Kc 7s 2d 9h"),
		Street:          poker.Turn,
		HeroPos:         Button,
		Pot:             10,
		OpponentActions: []OpponentMove{{Name: "OppA", Action: MoveCheck}},
	}

	result := Decide(s, Raise, nil)

	assert.Equal(t, Raise, result.BestAction)
	require.NotNil(t, result.RaiseSize)
	assert.Equal(t, 6.0, *result.RaiseSize)
	assert.Equal(t, 54.0, result.Equity)
	assert.GreaterOrEqual(t, result.Score, 95)
	assert.Equal(t, VerdictPerfect, result.Verdict)
	assert.Contains(t, result.Reasons[1], "(top pair)")
}

func TestDecideOpponentActions(t *testing.T) {
	t.Parallel()

	base := TableSnapshot{
		HeroHand: hand(t, "8c3d"),
		Board:    board(t, "Kh Qs 5d"),
		Street:   poker.Flop,
		HeroPos:  UTG,
		Pot:      6,
	}

	t.Run("unopened pot raises", func(t *testing.T) {
		result := Decide(base, Call, nil)
		assert.Equal(t, Raise, result.BestAction)
		require.NotNil(t, result.RaiseSize)
		assert.Equal(t, 3.0, *result.RaiseSize)
	})

	t.Run("a bet without actions is still faced", func(t *testing.T) {
		s := base
		s.Facing = &Facing{Type: MoveBet, Size: 6}
		assert.Equal(t, Fold, Decide(s, Call, nil).BestAction)
	})

	t.Run("everyone checked", func(t *testing.T) {
		s := base
		s.OpponentActions = []OpponentMove{{Name: "OppA", Action: MoveCheck}, {Name: "OppB", Action: MoveCheck}}
		result := Decide(s, Call, nil)
		assert.Equal(t, Raise, result.BestAction)
		require.NotNil(t, result.RaiseSize)
		assert.Equal(t, 3.0, *result.RaiseSize)
	})

	t.Run("everyone folded", func(t *testing.T) {
		s := base
		s.OpponentActions = []OpponentMove{{Name: "OppA", Action: MoveFold}}
		assert.Equal(t, Raise, Decide(s, Call, nil).BestAction)
	})

	t.Run("mixed actions", func(t *testing.T) {
		s := base
		s.OpponentActions = []OpponentMove{{Name: "OppA", Action: MoveCheck}, {Name: "OppB", Action: MoveFold}}
		assert.Equal(t, Call, Decide(s, Call, nil).BestAction)
	})
}

func TestDecidePreflop(t *testing.T) {
	t.Parallel()

	t.Run("aces raise", func(t *testing.T) {
		s := TableSnapshot{
			HeroHand: hand(t, "AsAh"),
			Street:   poker.Preflop,
			HeroPos:  Button,
			Pot:      1.5,
		}
		result := Decide(s, Raise, nil)
		assert.Equal(t, Raise, result.BestAction)
		require.NotNil(t, result.RaiseSize)
		assert.Equal(t, 3.0, *result.RaiseSize)
		assert.Equal(t, 82.0, result.Equity)
		assert.Equal(t, 100, result.Score)
		assert.Equal(t, VerdictPerfect, result.Verdict)
		assert.Equal(t, []string{"pot-odds+", "made-hand", "value/semibluff", "preflop-discipline"}, result.ConceptTags)
		assert.Contains(t, result.Reasons[1], "Preflop plan: AA is premium")
	})

	t.Run("trash fold is floored", func(t *testing.T) {
		s := TableSnapshot{
			HeroHand:        hand(t, "7c2d"),
			Street:          poker.Preflop,
			HeroPos:         UTG,
			Pot:             1.5,
			Facing:          &Facing{Type: MoveRaise, Size: 3},
			OpponentActions: []OpponentMove{{Name: "OppA", Action: MoveRaise, Size: 3}},
		}
		result := Decide(s, Fold, nil)
		assert.Equal(t, Fold, result.BestAction)
		assert.Nil(t, result.RaiseSize)
		assert.Equal(t, 72, result.Score)
		assert.Equal(t, VerdictGood, result.Verdict)
	})

	t.Run("trash call is punished", func(t *testing.T) {
		s := TableSnapshot{
			HeroHand: hand(t, "7c2d"),
			Street:   poker.Preflop,
			HeroPos:  UTG,
			Pot:      1.5,
			Facing:   &Facing{Type: MoveRaise, Size: 3},
		}
		result := Decide(s, Call, nil)
		assert.Equal(t, Fold, result.BestAction)
		assert.Less(t, result.Score, 50)
	})

	t.Run("declared size is compared", func(t *testing.T) {
		s := TableSnapshot{
			HeroHand: hand(t, "KdKc"),
			Street:   poker.Preflop,
			HeroPos:  CO,
			Pot:      1.5,
		}
		size := 5.0
		result := Decide(s, Raise, &size)
		assert.Contains(t, result.Reasons, "Sizing: you chose 5bb, the suggested raise is 3bb.")
	})
}

func TestDecideUsesProvidedOuts(t *testing.T) {
	t.Parallel()

	s := TableSnapshot{
		HeroHand: hand(t, "9c8c"),
		Board:    board(t, "Ac Kc 2d"),
		Street:   poker.Flop,
		HeroPos:  HJ,
		Pot:      10,
		Facing:   &Facing{Type: MoveBet, Size: 5},
		Outs:     &classification.OutsResult{Outs: 9, Equity: 36, Draw: classification.FlushDraw, Label: "Flush draw"},
	}

	result := Decide(s, Call, nil)
	assert.Equal(t, 36.0, result.Equity)
	assert.Equal(t, Call, result.BestAction)
	assert.Contains(t, result.ConceptTags, "draws")
}

func TestDecideIsIdempotent(t *testing.T) {
	t.Parallel()

	s := TableSnapshot{
		HeroHand:        hand(t, "JhTh"),
		Board:           board(t, "9h 8c 2h Kd"),
		Street:          poker.Turn,
		HeroPos:         CO,
		Pot:             12,
		Facing:          &Facing{Type: MoveBet, Size: 8},
		OpponentActions: []OpponentMove{{Name: "OppB", Action: MoveBet, Size: 8}, {Name: "OppC", Action: MoveRaise, Size: 20}},
	}

	first := Decide(s, Call, nil)
	second := Decide(s, Call, nil)
	assert.Equal(t, first, second)
}

func TestDecideScoreBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	deck := poker.NewDeck(rng)
	streets := []poker.Street{poker.Preflop, poker.Flop, poker.Turn, poker.River}
	positions := []Position{UTG, HJ, CO, Button}
	moves := []Move{MoveCheck, MoveBet, MoveFold, MoveCall, MoveRaise}

	for i := range 500 {
		deck.Reset()
		deck.Shuffle()
		cards := deck.Deal(7)
		street := streets[i%len(streets)]

		s := TableSnapshot{
			HeroHand: [2]poker.Card{cards[0], cards[1]},
			Board:    BoardUpTo(cards[2:], street),
			Street:   street,
			HeroPos:  positions[rng.IntN(len(positions))],
			Pot:      float64(rng.IntN(20)) + 0.5,
		}
		if rng.IntN(2) == 0 {
			s.Facing = &Facing{Type: MoveBet, Size: float64(rng.IntN(30) + 1)}
		}
		for j := range rng.IntN(4) {
			s.OpponentActions = append(s.OpponentActions, OpponentMove{Name: string(rune('A' + j)), Action: moves[rng.IntN(len(moves))]})
		}

		for _, action := range []Action{Fold, Call, Raise} {
			result := Decide(s, action, nil)
			require.GreaterOrEqual(t, result.Score, 0)
			require.LessOrEqual(t, result.Score, 100)
			require.LessOrEqual(t, len(result.Reasons), 6)
			require.NotEmpty(t, result.Summary)
			require.GreaterOrEqual(t, result.Equity, 0.0)
			require.LessOrEqual(t, result.Equity, 100.0)
			if action == result.BestAction {
				require.GreaterOrEqual(t, result.Score, 50)
			}
			if result.BestAction == Raise {
				require.NotNil(t, result.RaiseSize)
			} else {
				require.Nil(t, result.RaiseSize)
			}
		}
	}
}

func TestVerdictThresholds(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())
	tests := []struct {
		score int
		want  Verdict
	}{
		{100, VerdictPerfect},
		{95, VerdictPerfect},
		{94, VerdictGreat},
		{80, VerdictGreat},
		{79, VerdictGood},
		{60, VerdictGood},
		{59, VerdictNeutral},
		{50, VerdictNeutral},
		{49, VerdictNotIdeal},
		{30, VerdictNotIdeal},
		{29, VerdictBad},
		{0, VerdictBad},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.verdict(tt.score), "score %d", tt.score)
	}
}

func TestAlignmentBonus(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())
	tests := []struct {
		hero, best Action
		want       float64
	}{
		{Raise, Raise, 14},
		{Call, Call, 14},
		{Fold, Fold, 14},
		{Raise, Call, -6},
		{Call, Raise, -5},
		{Fold, Call, -14},
		{Call, Fold, -14},
		{Raise, Fold, -14},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.alignmentBonus(tt.hero, tt.best), "%s vs %s", tt.hero, tt.best)
	}
}

func TestFallbackScore(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.EdgeWeight = math.Inf(1)
	e := NewEngine(cfg)

	s := TableSnapshot{
		HeroHand: hand(t, "QdQs"),
		Board:    board(t, "2c 7h 9s"),
		Street:   poker.Flop,
		HeroPos:  MP,
		Pot:      8,
		Facing:   &Facing{Type: MoveBet, Size: 4},
	}
	result := e.Decide(s, Call, nil)
	assert.Equal(t, 60, result.Score)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.GreatScore = cfg.PerfectScore
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MaxReasons = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.PreflopCallStrength = 90
	assert.Error(t, cfg.Validate())
}

func TestCategoryTableCoversEveryCategory(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	prev := -1
	for _, c := range poker.Categories {
		got := cfg.CategoryEquity.Get(c)
		assert.Greater(t, got, prev, c.String())
		prev = got
	}
	assert.Equal(t, 100, cfg.CategoryEquity.Get(poker.StraightFlush))
	assert.Equal(t, 24, cfg.MadeHandBonus.Get(poker.StraightFlush))
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Action{"FOLD": Fold, "check": Call, "Bet": Raise, "raise": Raise} {
		got, err := ParseAction(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseAction("shove")
	assert.Error(t, err)
}

// madeAnalysis evaluates hole and board the way Decide does, up to the
// made-hand equity step.
func madeAnalysis(t *testing.T, e *Engine, hole, community string) (*analysis, float64) {
	t.Helper()
	b := board(t, community)
	streets := map[int]poker.Street{3: poker.Flop, 4: poker.Turn, 5: poker.River}
	a := &analysis{snapshot: TableSnapshot{HeroHand: hand(t, hole), Board: b, Street: streets[len(b.Cards())]}}
	a.board = b.Cards()
	a.texture = classification.AnalyzeBoard(a.board)
	eval := poker.Evaluate(append(a.snapshot.HeroHand[:], a.board...))
	a.made = &eval
	return a, e.madeHandEquity(a)
}

func TestMadeHandAdjustments(t *testing.T) {
	t.Parallel()

	bigTopTwo := func(c *Config) { c.TopTwoPairEquityBonus = 40 }
	tests := []struct {
		name          string
		hole, board   string
		tweak         func(*Config)
		pair          pairPosition
		topTwo        bool
		equity        float64
		vulnerability int
		boost         int
	}{
		{"top pair", "KsQd", "Kh 9d 4c", nil, topPair, false, 51, 0, 8},
		{"second pair", "9s8d", "Kh 9d 4c", nil, secondPair, false, 45, 0, 6},
		{"middle pair", "7s7d", "Kh 9d 4c", nil, middlePair, false, 35, 6, 4},
		{"low pair", "4s2d", "Kh 9d 4c", nil, lowPair, false, 29, 8, 4},
		{"board pair", "As8d", "Kh Kd 4c", nil, lowPair, false, 29, 8, 4},
		{"high card", "As8d", "Kh 9d 4c", nil, noPair, false, 19, 10, 0},
		{"top two pair", "Ks9s", "Kh 9d 4c", nil, noPair, true, 62, 0, 8},
		{"top two pair is capped", "Ks9s", "Kh 9d 4c 2s 3h", bigTopTwo, noPair, true, 94, 0, 8},
		{"big two pair", "KsJs", "Kh Jd 4c", nil, noPair, true, 62, 0, 14},
		{"turn discount", "KsQd", "Kh 9d 4c 2s", nil, topPair, false, 54, 0, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.tweak != nil {
				tt.tweak(&cfg)
			}
			e := NewEngine(cfg)
			a, equity := madeAnalysis(t, e, tt.hole, tt.board)
			assert.Equal(t, tt.pair, a.pair)
			assert.Equal(t, tt.topTwo, a.topTwo)
			assert.Equal(t, tt.equity, equity)
			assert.Equal(t, tt.vulnerability, e.vulnerabilityPenalty(a))
			assert.Equal(t, tt.boost, e.madeHandBoost(a))
		})
	}
}

func TestTexturePenalty(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())
	tests := []struct {
		name      string
		suited    bool
		connected bool
		street    poker.Street
		want      int
	}{
		{"wet flop", true, true, poker.Flop, 8},
		{"two-tone flop", true, false, poker.Flop, 5},
		{"connected turn", false, true, poker.Turn, 4},
		{"dry turn", false, false, poker.Turn, 1},
		{"suited river", true, false, poker.River, 3},
		{"dry river", false, false, poker.River, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &analysis{
				snapshot: TableSnapshot{Street: tt.street},
				texture:  classification.BoardTexture{SuitPaired: tt.suited, Connected: tt.connected},
			}
			assert.Equal(t, tt.want, e.texturePenalty(a))
		})
	}
}

func TestDisciplinePenalty(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())
	bet := &Facing{Type: MoveBet, Size: 5}
	tests := []struct {
		name       string
		facing     *Facing
		equity     float64
		potOdds    float64
		facingPct  float64
		aggression int
		want       float64
	}{
		{"nothing to face", nil, 5, 0, 0, 3, 0},
		{"priced in", bet, 60, 25, 50, 1, 0},
		{"bad price", bet, 20, 33.3, 50, 1, -12},
		{"inside the price margin", bet, 24, 33.3, 50, 1, 0},
		{"overbet", bet, 40, 30, 80, 1, -6},
		{"overbet with a strong hand", bet, 50, 30, 80, 1, 0},
		{"aggressive table", bet, 50, 20, 50, 2, -4},
		{"aggressive table with a strong hand", bet, 55, 20, 50, 3, 0},
		{"everything at once", bet, 10, 40, 100, 3, -22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &analysis{
				snapshot:   TableSnapshot{Facing: tt.facing},
				equity:     tt.equity,
				potOdds:    tt.potOdds,
				facingPct:  tt.facingPct,
				aggression: tt.aggression,
			}
			assert.Equal(t, tt.want, e.disciplinePenalty(a))
		})
	}
}

func TestOverridePreflop(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())
	raise := &Facing{Type: MoveRaise, Size: 3}
	tests := []struct {
		name     string
		strength int
		facing   *Facing
		edge     float64
		best     Action
		size     float64
	}{
		{"strong opens", 85, nil, -20, Raise, 4},
		{"strong reraises", 85, raise, -20, Raise, 6.9},
		{"mixed opens", 75, nil, -20, Raise, 4},
		{"mixed reraises a good price", 75, raise, -5, Raise, 6.9},
		{"mixed calls a bad price", 75, raise, -10, Call, 0},
		{"mixed at the edge calls", 75, raise, -8, Call, 0},
		{"playable calls", 60, raise, 10, Call, 0},
		{"weak folds", 40, nil, 10, Fold, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &analysis{
				snapshot: TableSnapshot{Street: poker.Preflop, Pot: 6, Facing: tt.facing},
				preflop:  &poker.PreflopProfile{Strength: tt.strength},
				edge:     tt.edge,
				best:     Call,
			}
			e.overridePreflop(a)
			assert.Equal(t, tt.best, a.best)
			if tt.best == Raise {
				require.NotNil(t, a.raiseSize)
				assert.Equal(t, tt.size, *a.raiseSize)
			} else {
				assert.Nil(t, a.raiseSize)
			}
		})
	}
}

func TestScoreFloors(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultConfig())
	tests := []struct {
		name string
		tier poker.PreflopTier
		hero Action
		best Action
		edge float64
		want int
	}{
		{"premium raise", poker.TierPremium, Raise, Raise, -200, 82},
		{"premium raise against a fold", poker.TierPremium, Raise, Fold, -200, 82},
		{"strong raise", poker.TierStrong, Raise, Call, -200, 72},
		{"trash fold", poker.TierTrash, Fold, Call, -200, 72},
		{"speculative call matching", poker.TierSpeculative, Call, Call, -200, 50},
		{"matching postflop", "", Call, Call, -200, 50},
		{"mismatch postflop", "", Call, Fold, -200, 0},
		{"clamped high", poker.TierPremium, Raise, Raise, 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &analysis{hero: tt.hero, best: tt.best, edge: tt.edge}
			if tt.tier != "" {
				a.preflop = &poker.PreflopProfile{Tier: tt.tier}
			}
			assert.Equal(t, tt.want, e.score(a))
		})
	}
}
