package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mpelletier/liaison/internal/catalog"
	"github.com/mpelletier/liaison/internal/ui/layout"
	"github.com/mpelletier/liaison/internal/ui/theme"
)

func (s *Session) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if s.width == 0 || s.height == 0 {
		return v
	}

	if layout.IsTooSmall(s.width, s.height) {
		v.SetContent(layout.RenderMinSizeMessage(s.width, s.height))
		return v
	}

	var content string
	switch {
	case s.quitConfirm:
		content = s.renderQuitConfirm()
	case s.phase == phaseSummary:
		content = s.renderSummary()
	case s.phase == phaseFeedback:
		content = s.renderFeedback()
	default:
		content = s.renderQuestion()
	}

	v.SetContent(content)
	return v
}

// renderHeader renders the session position and running score.
func (s *Session) renderHeader() string {
	it := s.current()
	ruleName := ""
	if it != nil {
		if rule, ok := catalog.Get(it.RuleID); ok {
			ruleName = catalog.CategoryDisplayName(rule.Category)
		}
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", ruleName))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d  ✓ %d  %d pts",
			s.idx+1, len(s.items), s.totalCorrect, s.totalPoints))

	line := left
	pad := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	rule := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(s.width-4, 0)))

	return line + "\n" + rule + "\n"
}

func (s *Session) renderQuestion() string {
	it := s.current()
	if it == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderHeader())
	b.WriteString("\n")

	if s.mcActive {
		b.WriteString(s.mc.View())
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(it.Prompt))
		b.WriteString("\n\n")
		b.WriteString("  " + s.input.View())
		if it.Hint != "" {
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("  Hint: " + it.Hint))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Enter: submit  Esc: quit"))
	return b.String()
}

func (s *Session) renderFeedback() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderHeader())
	b.WriteString("\n")

	if s.verdict.Correct {
		b.WriteString(theme.Correct.Render("  Correct !"))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("  +%d pts", s.outcome.PointsEarned)))
	} else {
		b.WriteString(theme.Incorrect.Render("  Pas tout à fait."))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("  Expected: "))
		b.WriteString(theme.Excerpt.Render(s.verdict.CorrectAnswer))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("  " + s.verdict.Feedback))

	if s.outcome.LevelUp {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("  ★ Level up! You are now level %d.", s.outcome.NewLevel)))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Press any key to continue"))
	return b.String()
}

func (s *Session) renderSummary() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(s.width).Render("Session terminée"))
	b.WriteString("\n\n")

	answered := s.idx
	if answered > len(s.items) {
		answered = len(s.items)
	}

	lines := []string{
		fmt.Sprintf("Questions answered   %d", answered),
		fmt.Sprintf("Correct              %d", s.totalCorrect),
		fmt.Sprintf("Points earned        %d", s.totalPoints),
		fmt.Sprintf("Day streak           %d", s.outcome.Streak),
	}
	if s.levelUps > 0 {
		lines = append(lines, fmt.Sprintf("Level ups            %d", s.levelUps))
	}

	for _, line := range lines {
		b.WriteString(theme.Body.Render("    " + line))
		b.WriteString("\n")
	}

	if s.saved && s.saveErr == nil && s.repo != nil {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("    Progress saved."))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("    Enter: quit"))
	return b.String()
}

func (s *Session) renderQuitConfirm() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("  End the session early?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Y: end and save  N: keep going"))
	return b.String()
}
