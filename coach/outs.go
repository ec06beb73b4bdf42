package coach

import "github.com/lox/pokercoach/classification"

// SnapshotOuts returns the client-supplied outs for s, falling back to the
// estimator when none were sent. Nil means no draw.
func SnapshotOuts(s TableSnapshot) *classification.OutsResult {
	if s.Outs != nil {
		return s.Outs
	}
	if outs, ok := classification.EstimateOuts(s.HeroHand[:], s.Board.Cards(), s.Street); ok {
		return &outs
	}
	return nil
}

// OutsGrade is the verdict on a player's outs count
type OutsGrade struct {
	Answer  int    `json:"answer"`
	Correct int    `json:"correctOuts"`
	Equity  int    `json:"equityApproxPct"`
	Label   string `json:"drawLabel,omitempty"`
	Grade   string `json:"grade"` // exact, close or wrong
}

// Exact reports whether the answer matched the outs count
func (g OutsGrade) Exact() bool { return g.Grade == "exact" }

// GradeOuts compares an outs answer with the estimator's count. A nil result
// means there is nothing to draw to, so zero is the correct answer.
func GradeOuts(answer int, outs *classification.OutsResult) OutsGrade {
	g := OutsGrade{Answer: answer}
	if outs != nil {
		g.Correct, g.Equity, g.Label = outs.Outs, outs.Equity, outs.Label
	}
	switch diff := answer - g.Correct; {
	case diff == 0:
		g.Grade = "exact"
	case diff >= -1 && diff <= 1:
		g.Grade = "close"
	default:
		g.Grade = "wrong"
	}
	return g
}
