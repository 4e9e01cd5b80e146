package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/solvo/internal/router"
	"github.com/abhisek/solvo/internal/screen"
	"github.com/abhisek/solvo/internal/store"
	"github.com/abhisek/solvo/internal/ui/layout"
	"github.com/abhisek/solvo/internal/ui/theme"
)

const listLimit = 50

type historyLoadedMsg struct {
	Solves []store.SolveRecord
	Err    error
}

// HistoryScreen displays past solved problems.
type HistoryScreen struct {
	solves   store.SolveRepo
	records  []store.SolveRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(solves store.SolveRepo) *HistoryScreen {
	return &HistoryScreen{
		solves:   solves,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.solves.RecentSolves(context.Background(), listLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Solves: records}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Solves
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No solved problems yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.Timestamp.Format("Jan 02, 2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, dateStr, summarize(rec.Problem, width-30))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderDetail(rec, width))
		}
	}

	return b.String()
}

// summarize collapses a problem statement to a single truncated line.
func summarize(problem string, maxLen int) string {
	line := strings.Join(strings.Fields(problem), " ")
	if maxLen < 8 {
		maxLen = 8
	}
	if len(line) > maxLen {
		line = line[:maxLen-1] + "…"
	}
	return line
}

func renderDetail(rec store.SolveRecord, width int) string {
	body := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		PaddingLeft(6).
		Width(width - 8)

	heading := theme.SectionHeading.PaddingLeft(4)

	var b strings.Builder
	b.WriteString(heading.Render("Solution"))
	b.WriteString("\n")
	b.WriteString(body.Render(rec.Solution))
	b.WriteString("\n")
	b.WriteString(heading.Render("Feedback"))
	b.WriteString("\n")
	b.WriteString(body.Render(rec.Feedback))
	b.WriteString("\n")
	return b.String()
}
