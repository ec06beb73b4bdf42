// Package tui is the interactive terminal trainer: it deals a spot, takes the
// player's decision, shows the coach's feedback and the run-out, and keeps the
// profile rating up to date.
package tui

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/internal/profile"
	"github.com/lox/pokercoach/internal/rating"
	"github.com/lox/pokercoach/internal/scenario"
	"github.com/lox/pokercoach/poker"
	"github.com/lox/pokercoach/showdown"
)

type prompt int

const (
	promptNone prompt = iota
	promptRaise
	promptOuts
)

// Options configures a trainer
type Options struct {
	Engine    *coach.Engine
	Generator *scenario.Generator
	Mode      scenario.Mode
	Store     *profile.Store
	Rand      *rand.Rand
	Logger    *log.Logger
}

// Feedback is what the trainer shows after a decision
type Feedback struct {
	Action   coach.Action
	Size     *float64
	Result   coach.Result
	Delta    int
	Showdown showdown.Result
}

// Model is the Bubble Tea model for the trainer
type Model struct {
	engine    *coach.Engine
	generator *scenario.Generator
	mode      scenario.Mode
	store     *profile.Store
	rng       *rand.Rand
	logger    *log.Logger

	keys  keyMap
	help  help.Model
	input textinput.Model

	prompt    prompt
	spot      scenario.Spot
	profile   profile.Profile
	feedback  *Feedback
	outsGrade *coach.OutsGrade
	status    string
	err       error

	width    int
	quitting bool
}

// New creates a trainer and deals the first spot
func New(opts Options) (*Model, error) {
	if opts.Engine == nil || opts.Generator == nil || opts.Store == nil || opts.Rand == nil {
		return nil, errors.New("trainer needs an engine, generator, profile store and random source")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	p, err := opts.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if opts.Generator.Focus == scenario.FocusAny {
		opts.Generator.Focus = scenario.ParseFocus(p.PreferredHands)
	}

	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 12
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		engine:    opts.Engine,
		generator: opts.Generator,
		mode:      opts.Mode,
		store:     opts.Store,
		rng:       opts.Rand,
		logger:    opts.Logger.WithPrefix("tui"),
		keys:      defaultKeys(),
		help:      help.New(),
		input:     ti,
		profile:   p,
	}
	m.deal()
	return m, nil
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Spot returns the spot being played
func (m *Model) Spot() scenario.Spot {
	return m.spot
}

// Feedback returns the feedback for the current spot, nil before a decision
func (m *Model) Feedback() *Feedback {
	return m.feedback
}

// Profile returns the latest profile
func (m *Model) Profile() profile.Profile {
	return m.profile
}

// OutsGrade returns the graded outs answer for the current spot
func (m *Model) OutsGrade() *coach.OutsGrade {
	return m.outsGrade
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Fold):
			m.decide(coach.Fold, nil)
		case key.Matches(msg, m.keys.Call):
			m.decide(coach.Call, nil)
		case key.Matches(msg, m.keys.Raise):
			if m.feedback == nil {
				return m, m.openPrompt(promptRaise, "raise size in bb (blank for suggested)")
			}
		case key.Matches(msg, m.keys.Outs):
			if m.feedback == nil && m.outsGrade == nil {
				return m, m.openPrompt(promptOuts, "how many outs?")
			}
		case key.Matches(msg, m.keys.Next):
			if m.feedback != nil {
				m.next()
			}
		}
	}
	return m, nil
}

func (m *Model) openPrompt(p prompt, placeholder string) tea.Cmd {
	m.prompt = p
	m.status = ""
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		value := strings.TrimSpace(m.input.Value())
		switch m.prompt {
		case promptRaise:
			var size *float64
			if value != "" {
				v, err := strconv.ParseFloat(value, 64)
				if err != nil || v <= 0 {
					m.status = "raise size must be a positive number"
					return m, nil
				}
				size = &v
			}
			m.closePrompt()
			m.decide(coach.Raise, size)
		case promptOuts:
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				m.status = "outs must be a whole number"
				return m, nil
			}
			m.closePrompt()
			m.answerOuts(n)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) deal() {
	m.spot = m.generator.Generate(m.mode)
	m.feedback = nil
	m.outsGrade = nil
	m.status = ""
	m.logger.Debug("Dealt spot", "street", m.spot.State.Street, "hand", poker.FormatCards(m.spot.State.HeroHand[:]))
}

func (m *Model) next() {
	if p, err := m.store.RecordHand(); err != nil {
		m.fail("record hand", err)
	} else {
		m.profile = p
	}
	m.deal()
}

func (m *Model) decide(action coach.Action, size *float64) {
	if m.feedback != nil {
		return
	}

	result := m.engine.Decide(m.spot.State, action, size)
	delta := rating.DeltaFromScore(result.Score, m.rng)
	m.feedback = &Feedback{
		Action:   action,
		Size:     size,
		Result:   result,
		Delta:    delta,
		Showdown: showdown.Resolve(m.spot.ShowdownInput(action)),
	}

	p, err := m.store.RecordDecision(result.Score, delta)
	if err != nil {
		m.fail("record decision", err)
		return
	}
	m.profile = p
	m.logger.Debug("Recorded decision", "action", action, "score", result.Score, "delta", delta, "rating", p.Rating)
}

func (m *Model) answerOuts(n int) {
	grade := coach.GradeOuts(n, m.spot.State.Outs)
	m.outsGrade = &grade

	p, err := m.store.RecordOutsAnswer(grade.Exact())
	if err != nil {
		m.fail("record outs answer", err)
		return
	}
	m.profile = p
}

func (m *Model) fail(what string, err error) {
	m.err = fmt.Errorf("%s: %w", what, err)
	m.logger.Error("Profile update failed", "op", what, "error", err)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		PaneStyle.Render(m.renderSpot()),
	}

	if m.outsGrade != nil {
		sections = append(sections, m.renderOuts())
	}
	if m.prompt != promptNone {
		sections = append(sections, m.input.View())
	}
	if m.status != "" {
		sections = append(sections, WarningStyle.Render(m.status))
	}
	if m.feedback != nil {
		sections = append(sections, PaneStyle.Render(m.renderFeedback()))
		sections = append(sections, PaneStyle.Render(m.renderShowdown()))
	}
	if m.err != nil {
		sections = append(sections, ErrorStyle.Render(m.err.Error()))
	}

	if m.prompt != promptNone {
		sections = append(sections, m.help.View(promptKeys{m.keys}))
	} else {
		sections = append(sections, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	progress := rating.ProgressFor(m.profile.Rating)
	line := fmt.Sprintf("Poker Coach | %s %d", progress.Current.Name, m.profile.Rating)
	if !progress.Current.Unbounded() {
		line += fmt.Sprintf(" (%.0f%% to %s)", progress.Pct*100, progress.Next.Name)
	}
	line += fmt.Sprintf(" | decisions %d | hands %d", m.profile.TotalDecisions, m.profile.TotalHands)
	return HeaderStyle.Render(line)
}

func (m *Model) renderSpot() string {
	s := m.spot.State
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s vs %s  pot %sbb\n",
		HandInfoStyle.Render(s.Street.String()), s.HeroPos, s.VillainPos, formatBB(s.Pot))
	fmt.Fprintf(&b, "Hand:  %s\n", renderCards(s.HeroHand[:]))
	if board := s.Board.Cards(); len(board) > 0 {
		fmt.Fprintf(&b, "Board: %s\n", renderCards(board))
	}

	if len(s.OpponentActions) > 0 {
		parts := make([]string, 0, len(s.OpponentActions))
		for _, a := range s.OpponentActions {
			part := a.Name + " " + strings.ToLower(string(a.Action))
			if a.Size > 0 {
				part += " " + formatBB(a.Size)
			}
			parts = append(parts, part)
		}
		fmt.Fprintf(&b, "Action: %s\n", strings.Join(parts, ", "))
	}

	if s.Facing != nil {
		b.WriteString(ActionsStyle.Render(fmt.Sprintf("Facing a %s of %sbb", strings.ToLower(string(s.Facing.Type)), formatBB(s.Facing.Size))))
	} else {
		b.WriteString(ActionsStyle.Render("Checked to you"))
	}
	return b.String()
}

func (m *Model) renderOuts() string {
	g := m.outsGrade
	style := ErrorStyle
	switch g.Grade {
	case "exact":
		style = SuccessStyle
	case "close":
		style = WarningStyle
	}
	text := fmt.Sprintf("Outs: you said %d, correct is %d", g.Answer, g.Correct)
	if g.Label != "" {
		text += fmt.Sprintf(" (%s, ~%d%%)", g.Label, g.Equity)
	}
	return style.Render(text)
}

func (m *Model) renderFeedback() string {
	f := m.feedback
	r := f.Result
	var b strings.Builder

	best := string(r.BestAction)
	if r.RaiseSize != nil {
		best += " " + formatBB(*r.RaiseSize) + "bb"
	}
	fmt.Fprintf(&b, "%s  score %d  best: %s\n",
		VerdictStyle(r.Verdict).Render(strings.ToUpper(string(r.Verdict))), r.Score, best)
	fmt.Fprintf(&b, "%s\n\n", r.Summary)
	for _, reason := range r.Reasons {
		fmt.Fprintf(&b, "  • %s\n", reason)
	}

	delta := fmt.Sprintf("%+d", f.Delta)
	if f.Delta >= 0 {
		delta = SuccessStyle.Render(delta)
	} else {
		delta = ErrorStyle.Render(delta)
	}
	fmt.Fprintf(&b, "\nRating %s → %d", delta, m.profile.Rating)
	if len(r.ConceptTags) > 0 {
		b.WriteString(InfoStyle.Render("  [" + strings.Join(r.ConceptTags, ", ") + "]"))
	}
	return b.String()
}

func (m *Model) renderShowdown() string {
	sd := m.feedback.Showdown
	var b strings.Builder

	fmt.Fprintf(&b, "Run-out: %s\n", renderCards(sd.FinalBoard.Cards()))
	for _, p := range sd.Players {
		name := p.Name
		if p.IsHero && sd.HeroFolded {
			name += " (folded)"
		}
		fmt.Fprintf(&b, "  %-14s %s  %s\n", name, renderCards(p.Hand[:]), p.Evaluation.Label)
	}

	outcome := "You would " + string(sd.HeroWouldResult)
	switch sd.HeroWouldResult {
	case showdown.Win:
		b.WriteString(SuccessStyle.Render(outcome))
	case showdown.Chop:
		b.WriteString(WarningStyle.Render(outcome))
	default:
		b.WriteString(ErrorStyle.Render(outcome))
	}
	return b.String()
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = CardStyle(c).Render(c.String())
	}
	return strings.Join(parts, " ")
}

func formatBB(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
