package tui

import (
	"io"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/internal/profile"
	"github.com/lox/pokercoach/internal/randutil"
	"github.com/lox/pokercoach/internal/scenario"
)

func newTestModel(t *testing.T) (*Model, *profile.Store) {
	t.Helper()

	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC))
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	store := profile.NewStore(filepath.Join(t.TempDir(), "profile.json"), clock, logger)

	m, err := New(Options{
		Engine:    coach.NewEngine(coach.DefaultConfig()),
		Generator: scenario.NewSeeded(99),
		Mode:      scenario.Hands,
		Store:     store,
		Rand:      randutil.New(99),
		Logger:    logger,
	})
	require.NoError(t, err)
	return m, store
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestTrainerDecision(t *testing.T) {
	m, store := newTestModel(t)
	spot := m.Spot()

	press(m, "c")

	fb := m.Feedback()
	require.NotNil(t, fb)
	assert.Equal(t, coach.Call, fb.Action)
	assert.Equal(t, coach.Decide(spot.State, coach.Call, nil), fb.Result)
	assert.Len(t, fb.Showdown.Players, 1+len(spot.OpponentHands))
	assert.False(t, fb.Showdown.HeroFolded)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, saved.TotalDecisions)
	assert.Equal(t, saved.Rating, m.Profile().Rating)
	require.NotNil(t, saved.LastScore)
	assert.Equal(t, fb.Result.Score, *saved.LastScore)

	// A second decision on the same spot is ignored
	press(m, "f")
	assert.Equal(t, coach.Call, m.Feedback().Action)

	view := m.View()
	assert.Contains(t, view, "Run-out:")
	assert.Contains(t, view, fb.Result.Summary)
}

func TestTrainerRaiseWithSize(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "r", "x", "enter")
	assert.Nil(t, m.Feedback(), "invalid size keeps the prompt open")
	assert.Contains(t, m.View(), "raise size must be a positive number")

	press(m, "esc")
	assert.Nil(t, m.Feedback())

	press(m, "r", "7", ".", "5", "enter")
	fb := m.Feedback()
	require.NotNil(t, fb)
	assert.Equal(t, coach.Raise, fb.Action)
	require.NotNil(t, fb.Size)
	assert.Equal(t, 7.5, *fb.Size)
}

func TestTrainerNextDealsNewSpot(t *testing.T) {
	m, store := newTestModel(t)
	first := m.Spot()

	press(m, "n")
	assert.Equal(t, first, m.Spot(), "next is ignored before deciding")

	press(m, "f", "n")
	assert.Nil(t, m.Feedback())
	assert.NotEqual(t, first, m.Spot())

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, saved.TotalHands)
	assert.Equal(t, 1, saved.TotalDecisions)
}

func TestTrainerOutsAnswer(t *testing.T) {
	m, store := newTestModel(t)
	want := coach.GradeOuts(0, m.Spot().State.Outs).Correct

	press(m, "o")
	for _, r := range strconv.Itoa(want) {
		press(m, string(r))
	}
	press(m, "enter")

	g := m.OutsGrade()
	require.NotNil(t, g)
	assert.Equal(t, "exact", g.Grade)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, saved.CorrectOuts)
}

func TestTrainerQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
