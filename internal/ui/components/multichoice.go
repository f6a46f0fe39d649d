package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mpelletier/liaison/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector for quiz options.
type MultiChoice struct {
	Prompt        string
	Options       []string
	CorrectAnswer string
	Selected      int
	Submitted     bool
	ChosenIndex   int
}

// NewMultiChoice creates a new multiple-choice component. The correct
// option is identified by its text rather than its index, since option
// order is shuffled upstream.
func NewMultiChoice(prompt string, options []string, correctAnswer string) MultiChoice {
	return MultiChoice{
		Prompt:        prompt,
		Options:       options,
		CorrectAnswer: correctAnswer,
		Selected:      0,
		Submitted:     false,
		ChosenIndex:   -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E"}

	for i, opt := range m.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Submitted {
			if opt == m.CorrectAnswer {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			} else if i == m.ChosenIndex {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// Answer returns the text of the chosen option, or "" before submission.
func (m MultiChoice) Answer() string {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// IsCorrect returns true if the user chose the correct option.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Answer() == m.CorrectAnswer
}
