package coach

import (
	"fmt"
	"strings"

	"github.com/lox/pokercoach/poker"
)

var summaries = map[Verdict]string{
	VerdictPerfect:  "Textbook line for this spot.",
	VerdictGreat:    "Strong line versus pot odds and position.",
	VerdictGood:     "Solid decision; a sharper size or line could add a little EV.",
	VerdictNeutral:  "Playable decision; small tweaks in sizing/line could add EV.",
	VerdictNotIdeal: "Marginal line; the price and board point to a different action.",
	VerdictBad:      "Line loses EV against the price offered; consider tighter folds or delayed aggression.",
}

func (e *Engine) reasons(a *analysis) []string {
	s := a.snapshot
	hand := poker.FormatCards(s.HeroHand[:])
	board := poker.FormatCards(a.board)

	var out []string
	on := ""
	if board != "" {
		on = " on " + board
	}
	out = append(out, fmt.Sprintf("Hand: %s%s. Pot odds need ~%.1f%% equity; estimated strength is ~%.1f%%.",
		hand, on, a.potOdds, a.equity))

	if a.made != nil {
		note := "Made hand: " + a.made.Label
		switch {
		case a.pair != noPair:
			note += " (" + a.pair.String() + ")"
		case a.topTwo:
			note += " (top two)"
		}
		out = append(out, note+".")
	}
	if desc := a.texture.Descriptors(); len(desc) > 0 && a.texture.Cards >= 3 {
		out = append(out, fmt.Sprintf("Board texture: %s (%s).", strings.Join(desc, ", "), a.texture.Wetness))
	}

	if a.preflop != nil {
		p := a.preflop
		out = append(out, fmt.Sprintf("Preflop plan: %s is %s (%s, strength %d); %s.",
			poker.Notation(s.HeroHand[0], s.HeroHand[1]), p.Tier, strings.ToLower(p.Label), p.Strength, preflopPlan(a.best)))
	}

	if s.Facing != nil {
		out = append(out, fmt.Sprintf("Facing %s of ~%.1f%% pot; opponents aggression: %d bets/raises.",
			strings.ToLower(string(s.Facing.Type)), a.facingPct, a.aggression))
		out = append(out, fmt.Sprintf("Pot odds: %s / (%s + %s) = %.1f%% required equity.",
			bb(s.Facing.Size), bb(s.Pot), bb(s.Facing.Size), a.potOdds))
	}

	if a.outs != nil {
		out = append(out, fmt.Sprintf("Draws: %d outs (%s) ≈ %d%% to improve by the rule of 4 and 2.",
			a.outs.Outs, a.outs.Label, a.outs.Equity))
	}

	if a.best == Raise && a.declared != nil && a.raiseSize != nil {
		out = append(out, fmt.Sprintf("Sizing: you chose %sbb, the suggested raise is %sbb.", bb(*a.declared), bb(*a.raiseSize)))
	}

	if limit := e.cfg.MaxReasons - 1; len(out) > limit {
		out = out[:limit]
	}
	return append(out, closing(a, hand, board))
}

func preflopPlan(best Action) string {
	switch best {
	case Raise:
		return "plan to raise"
	case Call:
		return "plan to continue cheaply"
	default:
		return "plan to fold"
	}
}

func closing(a *analysis, hand, board string) string {
	switch a.best {
	case Raise:
		if board == "" {
			board = "no board"
		}
		return fmt.Sprintf("Raising with %s vs %s leverages fold equity when ahead and denies equity to worse draws.", hand, board)
	case Call:
		if board == "" {
			return fmt.Sprintf("Calling keeps dominated hands in and lets %s realise its equity.", hand)
		}
		return fmt.Sprintf("Calling keeps dominated hands in; %s still has %.1f%% versus the price.", hand, a.equity)
	default:
		return fmt.Sprintf("Folding is best: %s lacks equity versus the price and aggression shown.", hand)
	}
}

func (e *Engine) conceptTags(a *analysis) []string {
	tags := make([]string, 0, 4)
	if a.edge >= 0 {
		tags = append(tags, "pot-odds+")
	} else {
		tags = append(tags, "pot-odds-")
	}
	if a.outs != nil {
		tags = append(tags, "draws")
	} else {
		tags = append(tags, "made-hand")
	}
	switch a.best {
	case Raise:
		tags = append(tags, "value/semibluff")
	case Fold:
		tags = append(tags, "discipline")
	default:
		tags = append(tags, "realize-equity")
	}
	if a.preflop != nil {
		if a.preflopBonus > 0 {
			tags = append(tags, "preflop-discipline")
		} else {
			tags = append(tags, "starting-hands")
		}
	}
	return tags
}

func bb(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
