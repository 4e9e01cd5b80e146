package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/solvo/internal/router"
	"github.com/abhisek/solvo/internal/screen"
	"github.com/abhisek/solvo/internal/screens/history"
	"github.com/abhisek/solvo/internal/screens/solve"
	"github.com/abhisek/solvo/internal/store"
	"github.com/abhisek/solvo/internal/ui/components"
	"github.com/abhisek/solvo/internal/ui/layout"
	"github.com/abhisek/solvo/internal/ui/theme"
	"github.com/abhisek/solvo/internal/wizard"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *wizard.Service, solves store.SolveRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW PROBLEM", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: solve.New(svc)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(solves)}
			}
		}, Disabled: solves == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("SOLVO")
	sections = append(sections, title)

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Structured problem-solving with an AI sounding board")
	sections = append(sections, subtitle, "")

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")

	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}
