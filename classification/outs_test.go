package classification

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/poker"
)

func TestEstimateOuts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		hole   string
		board  string
		street poker.Street
		outs   int
		equity int
		draw   DrawType
		label  string
	}{
		{"combo draw", "AsKs", "Qs Js 2h", poker.Flop, 16, 64, ComboDraw, "Combo draw (flush + straight)"},
		{"open-ended", "9h8h", "7c 6d 2s", poker.Flop, 8, 32, OpenEndedStraightDraw, "Open-ended straight draw"},
		{"gutshot", "9h7d", "8c 5s 2c", poker.Flop, 4, 16, Gutshot, "Gutshot straight draw"},
		{"flush draw on the turn", "Ah4h", "Kh 9h 2c 7s", poker.Turn, 9, 18, FlushDraw, "Flush draw"},
		{"wheel draw", "Ac2d", "3h 4s 9c", poker.Flop, 8, 32, OpenEndedStraightDraw, "Open-ended straight draw"},
		{"set draw", "6c6d", "Kh 9s 2c", poker.Flop, 2, 8, SetDraw, "Set draw"},
		{"pocket pair on paired board", "7c7d", "Kh Ks 2c", poker.Flop, 4, 16, SetDraw, "Set draw"},
		{"flopped set to quads", "7c7d", "Kh 7s 2c", poker.Flop, 2, 8, SetDraw, "Set draw"},
		{"trips draw", "AhQd", "Ac 8s 3d", poker.Flop, 5, 20, TripsDraw, "Trips draw"},
		{"two pair outs on a paired board", "AhQd", "8c 8s 3d", poker.Flop, 6, 24, TwoPairDraw, "Two pair / full house outs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EstimateOuts(poker.MustParseCards(tt.hole), poker.MustParseCards(tt.board), tt.street)
			require.True(t, ok)
			assert.Equal(t, tt.outs, got.Outs)
			assert.Equal(t, tt.equity, got.Equity)
			assert.Equal(t, tt.draw, got.Draw)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestEstimateOutsNone(t *testing.T) {
	t.Parallel()

	_, ok := EstimateOuts(poker.MustParseCards("AsKs"), nil, poker.Preflop)
	assert.False(t, ok, "preflop")

	_, ok = EstimateOuts(poker.MustParseCards("AsKs"), poker.MustParseCards("Qs Js"), poker.Flop)
	assert.False(t, ok, "short board")

	_, ok = EstimateOuts(poker.MustParseCards("7c2d"), poker.MustParseCards("Kh Qs 9s"), poker.Flop)
	assert.False(t, ok, "nothing to draw to")
}

func TestComboOverlapIsFixed(t *testing.T) {
	t.Parallel()

	hole := poker.MustParseCards("Th9h")
	board := poker.MustParseCards("8h 7c 2h")
	got, ok := EstimateOuts(hole, board, poker.Flop)
	require.True(t, ok)
	assert.Equal(t, ComboDraw, got.Draw)
	assert.Equal(t, flushDrawOuts+openEndedOuts-1, got.Outs)
}

func TestRuleOfFourAndTwo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 64, RuleOfFourAndTwo(16, poker.Flop))
	assert.Equal(t, 100, RuleOfFourAndTwo(30, poker.Flop))
	assert.Equal(t, 18, RuleOfFourAndTwo(9, poker.Turn))
	assert.Equal(t, 18, RuleOfFourAndTwo(9, poker.River))
	assert.Equal(t, 0, RuleOfFourAndTwo(-3, poker.Flop))
}

func TestOutsResultJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(OutsResult{Outs: 9, Equity: 36, Draw: FlushDraw, Label: "Flush draw"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"correctOuts":9,"equityApproxPct":36,"drawType":"flush draw","drawLabel":"Flush draw"}`, string(data))

	var back OutsResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, FlushDraw, back.Draw)
}
