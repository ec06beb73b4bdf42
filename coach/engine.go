package coach

import (
	"math"

	"github.com/lox/pokercoach/classification"
	"github.com/lox/pokercoach/poker"
)

// Engine grades hero decisions against a fixed scoring configuration. It holds
// no per-call state and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine returns an engine using cfg
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the scoring configuration in use
func (e *Engine) Config() Config {
	return e.cfg
}

var defaultEngine = NewEngine(DefaultConfig())

// Decide grades a decision with the default configuration
func Decide(s TableSnapshot, hero Action, raiseSize *float64) Result {
	return defaultEngine.Decide(s, hero, raiseSize)
}

// pairPosition places a paired hand relative to the board
type pairPosition int

const (
	noPair pairPosition = iota
	topPair
	secondPair
	middlePair
	lowPair
)

func (p pairPosition) String() string {
	switch p {
	case topPair:
		return "top pair"
	case secondPair:
		return "second pair"
	case middlePair:
		return "middle pair"
	case lowPair:
		return "low pair"
	default:
		return ""
	}
}

// analysis carries the intermediate figures of one decision
type analysis struct {
	snapshot TableSnapshot
	hero     Action
	declared *float64

	board   []poker.Card
	texture classification.BoardTexture

	made     *poker.HandEvaluation
	pair     pairPosition
	topTwo   bool
	preflop  *poker.PreflopProfile
	outs     *classification.OutsResult
	potOdds  float64
	equity   float64
	edge     float64
	position float64

	aggression int
	facingPct  float64

	best      Action
	raiseSize *float64

	madeBoost     int
	vulnerability int
	texturePen    int
	discipline    float64
	alignment     float64
	preflopBonus  float64
}

// Decide grades the hero's action for a snapshot. The declared raise size is
// optional and only used in the reasons.
func (e *Engine) Decide(s TableSnapshot, hero Action, raiseSize *float64) Result {
	a := &analysis{snapshot: s, hero: hero, declared: raiseSize}
	a.board = s.Board.Cards()
	a.texture = classification.AnalyzeBoard(a.board)

	a.potOdds = PotOdds(s.Pot, s.Facing)
	e.estimateEquity(a)
	a.edge = a.equity - a.potOdds
	a.position = e.positionBonus(s.HeroPos)

	for _, m := range s.OpponentActions {
		if m.Action.IsAggressive() {
			a.aggression++
		}
	}
	if s.Facing != nil && s.Pot > 0 {
		a.facingPct = s.Facing.Size / s.Pot * 100
	}

	e.recommend(a)
	if a.preflop != nil {
		e.overridePreflop(a)
	}

	a.madeBoost = e.madeHandBoost(a)
	a.vulnerability = e.vulnerabilityPenalty(a)
	a.texturePen = e.texturePenalty(a)
	a.discipline = e.disciplinePenalty(a)
	a.alignment = e.alignmentBonus(a.hero, a.best)
	a.preflopBonus = e.preflopDisciplineBonus(a)

	score := e.score(a)
	verdict := e.verdict(score)

	return Result{
		Score:       score,
		Verdict:     verdict,
		BestAction:  a.best,
		RaiseSize:   a.raiseSize,
		Reasons:     e.reasons(a),
		ConceptTags: e.conceptTags(a),
		Summary:     summaries[verdict],
		Equity:      round2(a.equity),
		PotOdds:     round2(a.potOdds),
	}
}

// PotOdds returns the equity percentage a call needs, 0 when there is no bet
func PotOdds(pot float64, facing *Facing) float64 {
	if facing == nil || facing.Size <= 0 || pot+facing.Size <= 0 {
		return 0
	}
	return facing.Size / (pot + facing.Size) * 100
}

func (e *Engine) estimateEquity(a *analysis) {
	s := a.snapshot
	equity := math.NaN()

	if len(a.board) >= 3 {
		cards := make([]poker.Card, 0, 7)
		cards = append(cards, s.HeroHand[:]...)
		cards = append(cards, a.board...)
		eval := poker.Evaluate(cards)
		a.made = &eval
		equity = e.madeHandEquity(a)
	}

	if s.Street == poker.Preflop {
		profile := poker.ProfilePreflop(s.HeroHand[0], s.HeroHand[1])
		a.preflop = &profile
		hint := float64(profile.EquityHint)
		if math.IsNaN(equity) || hint > equity {
			equity = hint
		}
	}

	a.outs = SnapshotOuts(s)
	if a.outs != nil {
		outsEquity := float64(a.outs.Equity)
		if math.IsNaN(equity) || outsEquity > equity {
			equity = outsEquity
		}
	}

	if math.IsNaN(equity) {
		equity = float64(e.cfg.CategoryEquity.HighCard)
	}
	a.equity = clampFloat(equity, 0, 100)
}

func (e *Engine) madeHandEquity(a *analysis) float64 {
	cfg := e.cfg
	eval := a.made
	equity := float64(cfg.CategoryEquity.Get(eval.Category))

	switch eval.Category {
	case poker.OnePair:
		a.pair = e.classifyPair(a, eval.TieBreak[1])
		switch a.pair {
		case topPair:
			equity = math.Min(equity+cfg.TopPairEquityBonus, cfg.TopPairEquityCap)
		case secondPair:
			equity += cfg.SecondPairEquityBonus
		case middlePair:
			equity -= cfg.MiddlePairEquityPenalty
		case lowPair:
			equity -= cfg.LowPairEquityPenalty
		}
	case poker.TwoPair:
		hi, lo := eval.TieBreak[1], eval.TieBreak[2]
		a.topTwo = hi == a.texture.Top() && lo == a.texture.Second() &&
			holds(a.snapshot.HeroHand, hi) && holds(a.snapshot.HeroHand, lo)
		if a.topTwo {
			equity = math.Min(equity+cfg.TopTwoPairEquityBonus, cfg.TopTwoPairEquityCap)
		}
	}

	switch a.snapshot.Street {
	case poker.Flop:
		equity -= cfg.FlopDiscount
	case poker.Turn:
		equity -= cfg.TurnDiscount
	case poker.River:
		equity -= cfg.RiverDiscount
	}
	return equity
}

// classifyPair places the pair rank against the two highest board ranks. A
// pair that lives entirely on the board counts as low.
func (e *Engine) classifyPair(a *analysis, rank int) pairPosition {
	if !holds(a.snapshot.HeroHand, rank) && !isPocketPair(a.snapshot.HeroHand) {
		return lowPair
	}
	t := a.texture
	switch {
	case rank >= t.Top():
		return topPair
	case rank >= t.Second():
		return secondPair
	case rank > t.Bottom():
		return middlePair
	default:
		return lowPair
	}
}

func (e *Engine) positionBonus(p Position) float64 {
	switch p {
	case Button, CO:
		return e.cfg.LatePositionBonus
	case HJ:
		return e.cfg.HijackBonus
	default:
		return 0
	}
}

func (e *Engine) recommend(a *analysis) {
	cfg := e.cfg
	s := a.snapshot

	if s.Facing != nil {
		switch {
		case a.edge > cfg.RaiseEdge && a.equity > cfg.RaiseEquity:
			a.best = Raise
			a.raiseSize = sizePtr(math.Max(s.Facing.Size*cfg.FacingRaiseMultiplier, cfg.MinFacingRaise))
		case a.edge > cfg.CallEdge:
			a.best = Call
		default:
			a.best = Fold
		}
		return
	}

	if a.equity+a.position > cfg.OpenRaiseEquity || allOpponents(s.OpponentActions, MoveCheck) || allOpponents(s.OpponentActions, MoveFold) {
		a.best = Raise
		a.raiseSize = sizePtr(math.Max(cfg.MinOpenRaise, math.Round(s.Pot*cfg.OpenRaisePotFraction)))
		return
	}
	a.best = Call
}

func (e *Engine) overridePreflop(a *analysis) {
	cfg := e.cfg
	s := a.snapshot
	strength := a.preflop.Strength

	raise := func() {
		a.best = Raise
		if s.Facing != nil {
			a.raiseSize = sizePtr(math.Max(s.Facing.Size*cfg.PreflopFacingMultiplier, cfg.MinFacingRaise))
		} else {
			a.raiseSize = sizePtr(math.Max(math.Round(s.Pot*cfg.PreflopOpenPotFraction), cfg.MinOpenRaise))
		}
	}

	switch {
	case strength >= cfg.PreflopRaiseStrength:
		raise()
	case strength >= cfg.PreflopMixedStrength:
		if s.Facing == nil || a.edge > cfg.PreflopMixedEdge {
			raise()
		} else {
			a.best, a.raiseSize = Call, nil
		}
	case strength >= cfg.PreflopCallStrength:
		a.best, a.raiseSize = Call, nil
	default:
		a.best, a.raiseSize = Fold, nil
	}
}

func (e *Engine) madeHandBoost(a *analysis) int {
	if a.made == nil {
		return 0
	}
	cfg := e.cfg
	boost := cfg.MadeHandBonus.Get(a.made.Category)
	switch a.made.Category {
	case poker.TwoPair:
		if a.made.TieBreak[2] >= cfg.BigTwoPairRank {
			boost += cfg.BigTwoPairBonus
		}
	case poker.OnePair:
		switch a.pair {
		case topPair:
			boost += cfg.TopPairBoost
		case secondPair:
			boost += cfg.SecondPairBoost
		}
	}
	return boost
}

func (e *Engine) vulnerabilityPenalty(a *analysis) int {
	if a.made == nil {
		return 0
	}
	switch a.made.Category {
	case poker.HighCard:
		return e.cfg.HighCardVulnerability
	case poker.OnePair:
		switch a.pair {
		case middlePair:
			return e.cfg.MiddlePairVulnerability
		case lowPair:
			return e.cfg.LowPairVulnerability
		}
	}
	return 0
}

func (e *Engine) texturePenalty(a *analysis) int {
	cfg := e.cfg
	penalty := 0
	if a.texture.SuitPaired {
		penalty += cfg.SuitedBoardPenalty
	}
	if a.texture.Connected {
		penalty += cfg.ConnectedBoardPenalty
	}
	switch a.snapshot.Street {
	case poker.Flop:
		penalty += cfg.FlopTexturePenalty
	case poker.Turn:
		penalty += cfg.TurnTexturePenalty
	}
	return penalty
}

func (e *Engine) disciplinePenalty(a *analysis) float64 {
	if a.snapshot.Facing == nil {
		return 0
	}
	cfg := e.cfg
	penalty := 0.0
	if a.equity < a.potOdds-cfg.PriceMargin {
		penalty -= cfg.PricePenalty
	}
	if a.facingPct > cfg.OverbetPotPct && a.equity < cfg.OverbetEquity {
		penalty -= cfg.OverbetPenalty
	}
	if a.aggression >= cfg.AggressionCount && a.equity < cfg.AggressionEquity {
		penalty -= cfg.AggressionPenalty
	}
	return penalty
}

func (e *Engine) alignmentBonus(hero, best Action) float64 {
	switch {
	case hero == best:
		return e.cfg.AlignMatchBonus
	case hero == Raise && best == Call:
		return -e.cfg.OverRaisePenalty
	case hero == Call && best == Raise:
		return -e.cfg.UnderRaisePenalty
	default:
		return -e.cfg.MismatchPenalty
	}
}

func (e *Engine) preflopDisciplineBonus(a *analysis) float64 {
	if a.preflop == nil {
		return 0
	}
	cfg := e.cfg
	switch {
	case a.preflop.Tier == poker.TierTrash && a.hero == Fold:
		return cfg.PreflopFoldTrashBonus
	case a.preflop.Tier == poker.TierPremium && a.hero == Raise:
		return cfg.PreflopRaisePremiumBonus
	case a.preflop.Tier == poker.TierStrong && a.hero == Raise:
		return cfg.PreflopRaiseStrongBonus
	case a.preflop.Tier == poker.TierSpeculative && a.hero == Call:
		return cfg.PreflopCallSpeculativeBonus
	case a.preflop.Tier == poker.TierStrong && a.hero == Call && a.snapshot.Facing != nil:
		return cfg.PreflopCallStrongBonus
	}
	return 0
}

func (e *Engine) score(a *analysis) int {
	cfg := e.cfg
	raw := cfg.ScoreBase +
		cfg.EdgeWeight*a.edge +
		a.position +
		a.discipline +
		cfg.MadeHandWeight*float64(a.madeBoost) -
		float64(a.texturePen) -
		float64(a.vulnerability) +
		a.alignment +
		cfg.ScoreLift +
		a.preflopBonus

	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return cfg.FallbackScore
	}
	score := int(math.Round(clampFloat(raw, 0, 100)))

	if a.hero == a.best {
		score = max(score, cfg.MatchFloor)
	}
	if a.preflop != nil {
		switch {
		case a.preflop.Tier == poker.TierTrash && a.hero == Fold:
			score = max(score, cfg.TrashFoldFloor)
		case a.preflop.Tier == poker.TierPremium && a.hero == Raise:
			score = max(score, cfg.PremiumRaiseFloor)
		case a.preflop.Tier == poker.TierStrong && a.hero == Raise:
			score = max(score, cfg.StrongRaiseFloor)
		}
	}
	return min(100, max(0, score))
}

func (e *Engine) verdict(score int) Verdict {
	cfg := e.cfg
	switch {
	case score >= cfg.PerfectScore:
		return VerdictPerfect
	case score >= cfg.GreatScore:
		return VerdictGreat
	case score >= cfg.GoodScore:
		return VerdictGood
	case score >= cfg.NeutralScore:
		return VerdictNeutral
	case score >= cfg.NotIdealScore:
		return VerdictNotIdeal
	default:
		return VerdictBad
	}
}

// allOpponents reports whether every opponent made move. An empty list
// qualifies, so an unopened pot reads as checked to the hero.
func allOpponents(moves []OpponentMove, move Move) bool {
	for _, m := range moves {
		if m.Action != move {
			return false
		}
	}
	return true
}

func holds(hand [2]poker.Card, rank int) bool {
	return int(hand[0].Rank) == rank || int(hand[1].Rank) == rank
}

func isPocketPair(hand [2]poker.Card) bool {
	return hand[0].Rank == hand[1].Rank
}

func sizePtr(v float64) *float64 {
	v = round2(v)
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
