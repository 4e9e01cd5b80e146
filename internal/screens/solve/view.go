package solve

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/solvo/internal/ui/theme"
	"github.com/abhisek/solvo/internal/wizard"
)

// stepPrompts are the instructions shown above the input on each step.
var stepPrompts = map[wizard.Step]string{
	wizard.StepProblem:   "What problem would you like to work through?",
	wizard.StepQuestions: "Answer these questions to sharpen the picture:",
	wizard.StepEvents:    "Which events or details led up to this?",
}

func (s *SolveScreen) View(width, height int) string {
	if s.sess.Step == wizard.StepResult {
		return s.renderResult(width)
	}
	return s.renderInputStep(width)
}

func (s *SolveScreen) renderInputStep(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + stepPrompts[s.sess.Step])
	b.WriteString(prompt)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-6, 0))))
	b.WriteString("\n\n")

	// The questions step shows the generated questions above the input.
	if s.sess.Step == wizard.StepQuestions && s.sess.Questions != "" {
		questions := lipgloss.NewStyle().
			Foreground(theme.Text).
			PaddingLeft(2).
			Width(width - 4).
			Render(s.sess.Questions)
		b.WriteString(questions)
		b.WriteString("\n\n")
	}

	if s.pending {
		b.WriteString(s.renderSpinner(width))
		return b.String()
	}

	input := lipgloss.NewStyle().
		PaddingLeft(2).
		Render(s.input.View())
	b.WriteString(input)
	b.WriteString("\n")

	if s.sess.ErrMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorBanner.PaddingLeft(2).Width(width - 4).Render(s.sess.ErrMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SolveScreen) renderSpinner(width int) string {
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	label := "Generating questions..."
	if s.sess.Step == wizard.StepEvents {
		label = "Working out a solution..."
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(frame) + " " + label)
}

func (s *SolveScreen) renderResult(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	section := func(heading, body string) {
		b.WriteString(theme.SectionHeading.PaddingLeft(2).Render(heading))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			PaddingLeft(2).
			Width(width - 4).
			Render(body))
		b.WriteString("\n\n")
	}

	section("Solution", s.sess.Solution)
	section("Feedback", s.sess.Feedback)

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		PaddingLeft(2).
		Render("Press R to start a new problem, Esc for home.")
	b.WriteString(hint)

	return b.String()
}
