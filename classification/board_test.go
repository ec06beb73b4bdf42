package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokercoach/poker"
)

func TestAnalyzeBoard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		board       string
		suitPaired  bool
		connected   bool
		paired      bool
		monotone    bool
		wetness     Wetness
		descriptors []string
	}{
		{"two-tone broadway", "Qs Js 2h", true, true, false, false, SemiWet, []string{"two-tone", "connected"}},
		{"monotone", "9h 6h 2h", true, false, false, true, Wet, []string{"monotone"}},
		{"rainbow dry", "Kc 7d 2s", false, false, false, false, Dry, nil},
		{"paired", "8c 8d 3h", false, false, true, false, SemiWet, []string{"paired"}},
		{"very wet", "Js Ts 9s", true, true, false, true, VeryWet, []string{"monotone", "connected"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeBoard(poker.MustParseCards(tt.board))
			assert.Equal(t, tt.suitPaired, got.SuitPaired, "suit paired")
			assert.Equal(t, tt.connected, got.Connected, "connected")
			assert.Equal(t, tt.paired, got.Paired, "paired")
			assert.Equal(t, tt.monotone, got.Monotone, "monotone")
			assert.Equal(t, tt.wetness, got.Wetness)
			assert.Equal(t, tt.descriptors, got.Descriptors())
		})
	}
}

func TestBoardRanks(t *testing.T) {
	t.Parallel()

	got := AnalyzeBoard(poker.MustParseCards("2h Qs Js Qd"))
	assert.Equal(t, []int{12, 11, 2}, got.Ranks)
	assert.Equal(t, 12, got.Top())
	assert.Equal(t, 11, got.Second())
	assert.Equal(t, 2, got.Bottom())

	empty := AnalyzeBoard(nil)
	assert.Zero(t, empty.Top())
	assert.Zero(t, empty.Second())
	assert.Equal(t, Dry, empty.Wetness)
}
