// Package app hosts the interactive practice session. It wires quiz
// items, answer checking, and progress tracking into a Bubble Tea
// program; all grammar logic lives in the packages it composes.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/mpelletier/liaison/internal/progress"
	"github.com/mpelletier/liaison/internal/quizgen"
	"github.com/mpelletier/liaison/internal/store"
	"github.com/mpelletier/liaison/internal/ui/components"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseSummary
)

// Session is the root Bubble Tea model for one practice run. The item
// list is fixed at start; answers feed the tracker and progress is
// persisted once, when the session ends.
type Session struct {
	items   []quizgen.Item
	tracker *progress.Tracker
	repo    store.ProgressRepo

	phase       phase
	idx         int
	mc          components.MultiChoice
	input       components.TextInput
	mcActive    bool
	quitConfirm bool

	verdict quizgen.Verdict
	outcome progress.AttemptOutcome

	totalPoints  int
	totalCorrect int
	levelUps     int

	saved   bool
	saveErr error

	width  int
	height int
}

// NewSession creates a session over the given items. The repo may be nil
// for an ephemeral session (nothing is persisted).
func NewSession(items []quizgen.Item, tracker *progress.Tracker, repo store.ProgressRepo) *Session {
	s := &Session{
		items:   items,
		tracker: tracker,
		repo:    repo,
	}
	s.setupItem()
	return s
}

func (s *Session) Init() tea.Cmd {
	if !s.mcActive {
		return s.input.Init()
	}
	return nil
}

// current returns the active item, or nil past the end.
func (s *Session) current() *quizgen.Item {
	if s.idx < 0 || s.idx >= len(s.items) {
		return nil
	}
	return &s.items[s.idx]
}

// setupItem prepares the input component for the current item.
func (s *Session) setupItem() {
	it := s.current()
	if it == nil {
		return
	}
	if len(it.Options) > 0 {
		s.mcActive = true
		s.mc = components.NewMultiChoice(it.Prompt, it.Options, it.CorrectAnswer)
	} else {
		s.mcActive = false
		s.input = components.NewTextInput("Tapez votre réponse...", 80)
	}
}

func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case feedbackDoneMsg:
		return s.advance()

	case sessionEndMsg:
		s.phase = phaseSummary
		return s, s.saveProgress()

	case progressSavedMsg:
		s.saved = true
		s.saveErr = msg.Err
		if s.saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: saving progress: %v\n", s.saveErr)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the text input while answering.
	if s.phase == phaseQuestion && !s.mcActive && !s.quitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Session) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return s, tea.Quit
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.phase {
	case phaseSummary:
		switch key {
		case "enter", "q", "esc":
			return s, tea.Quit
		}
		return s, nil

	case phaseFeedback:
		// Any key dismisses feedback.
		return s, func() tea.Msg { return feedbackDoneMsg{} }

	case phaseQuestion:
		if key == "esc" {
			s.quitConfirm = true
			return s, nil
		}

		if s.mcActive {
			var cmd tea.Cmd
			s.mc, cmd = s.mc.Update(msg)
			if s.mc.Submitted {
				return s.submitAnswer(s.mc.Answer())
			}
			return s, cmd
		}

		if key == "enter" {
			answer := s.input.Value()
			if answer == "" {
				return s, nil
			}
			return s.submitAnswer(answer)
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submitAnswer checks the answer, records the attempt, and shows feedback.
func (s *Session) submitAnswer(answer string) (tea.Model, tea.Cmd) {
	it := s.current()
	if it == nil {
		return s, nil
	}

	s.verdict = quizgen.ValidateAnswer(it, answer)
	s.outcome = s.tracker.RecordAttempt(it.RuleID, s.verdict.Correct, s.verdict.Points)

	if s.verdict.Correct {
		s.totalCorrect++
		s.totalPoints += s.outcome.PointsEarned
	}
	if s.outcome.LevelUp {
		s.levelUps++
	}

	if !s.mcActive {
		s.input.Submit(s.verdict.Correct)
	}

	s.phase = phaseFeedback
	return s, nil
}

// advance moves to the next item or ends the session.
func (s *Session) advance() (tea.Model, tea.Cmd) {
	s.idx++
	if s.current() == nil {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.phase = phaseQuestion
	s.setupItem()
	if !s.mcActive {
		return s, s.input.Init()
	}
	return s, nil
}

// saveProgress persists the tracker state.
func (s *Session) saveProgress() tea.Cmd {
	if s.repo == nil {
		return func() tea.Msg { return progressSavedMsg{} }
	}
	p := s.tracker.Progress()
	repo := s.repo
	return func() tea.Msg {
		err := repo.Save(context.Background(), store.DefaultProgressKey, p)
		return progressSavedMsg{Err: err}
	}
}

// Run starts the Bubble Tea program for the session.
func Run(s *Session) error {
	p := tea.NewProgram(s)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
