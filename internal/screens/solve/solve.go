package solve

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solvo/internal/router"
	"github.com/abhisek/solvo/internal/screen"
	"github.com/abhisek/solvo/internal/ui/components"
	"github.com/abhisek/solvo/internal/ui/layout"
	"github.com/abhisek/solvo/internal/wizard"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SolveScreen drives the four-step problem-solving flow: describe the
// problem, answer clarifying questions, add relevant events, read the
// result. While a generation call is in flight the screen is pending
// and input is ignored.
type SolveScreen struct {
	svc     *wizard.Service
	sess    wizard.Session
	input   components.TextArea
	pending bool
	frame   int
}

var _ screen.Screen = (*SolveScreen)(nil)
var _ screen.KeyHintProvider = (*SolveScreen)(nil)
var _ screen.StepIndicator = (*SolveScreen)(nil)

// New creates a SolveScreen with a fresh session.
func New(svc *wizard.Service) *SolveScreen {
	return &SolveScreen{
		svc:   svc,
		sess:  wizard.NewSession(),
		input: newInput(wizard.StepProblem),
	}
}

// newInput builds the text area for a given step.
func newInput(step wizard.Step) components.TextArea {
	placeholder := ""
	switch step {
	case wizard.StepProblem:
		placeholder = "Describe the problem you're facing..."
	case wizard.StepQuestions:
		placeholder = "Answer the questions above, in any order..."
	case wizard.StepEvents:
		placeholder = "What happened? Dates, attempts, outcomes..."
	}
	return components.NewTextArea(placeholder, 72, 8)
}

func (s *SolveScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SolveScreen) Title() string {
	return s.sess.Step.String()
}

func (s *SolveScreen) StepIndicator() (current, total int) {
	return s.sess.Step.Ordinal(), wizard.StepCount
}

func (s *SolveScreen) KeyHints() []layout.KeyHint {
	if s.pending {
		return []layout.KeyHint{
			{Key: "…", Description: "Waiting for AI"},
		}
	}
	if s.sess.Step == wizard.StepResult {
		return []layout.KeyHint{
			{Key: "R", Description: "New problem"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SolveScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case transitionDoneMsg:
		return s.handleTransitionDone(msg)

	case spinnerTickMsg:
		if !s.pending {
			return s, nil
		}
		s.frame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.pending && s.sess.Step != wizard.StepResult {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SolveScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.pending {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "ctrl+s":
		if s.sess.Step != wizard.StepResult {
			return s.submit()
		}
		return s, nil
	}

	if s.sess.Step == wizard.StepResult {
		switch msg.String() {
		case "r", "R":
			s.sess = wizard.Restart()
			s.input = newInput(wizard.StepProblem)
			return s, s.input.Init()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit captures the current input into the session and runs the
// step's transition. The two generation steps run asynchronously with
// a spinner; the answers step is immediate.
func (s *SolveScreen) submit() (screen.Screen, tea.Cmd) {
	sess := s.sess

	switch sess.Step {
	case wizard.StepProblem:
		sess.Problem = s.input.Value()
		return s.runAsync(func() wizard.Session {
			return s.svc.SubmitProblem(context.Background(), sess)
		})

	case wizard.StepQuestions:
		sess.Answers = s.input.Value()
		return s.applyTransition(s.svc.SubmitAnswers(sess))

	case wizard.StepEvents:
		sess.Events = s.input.Value()
		return s.runAsync(func() wizard.Session {
			return s.svc.SubmitEvents(context.Background(), sess)
		})
	}

	return s, nil
}

func (s *SolveScreen) runAsync(transition func() wizard.Session) (screen.Screen, tea.Cmd) {
	s.pending = true
	s.input.Blur()
	return s, tea.Batch(
		spinnerTick(),
		func() tea.Msg {
			return transitionDoneMsg{Sess: transition()}
		},
	)
}

func (s *SolveScreen) handleTransitionDone(msg transitionDoneMsg) (screen.Screen, tea.Cmd) {
	s.pending = false
	return s.applyTransition(msg.Sess)
}

// applyTransition installs the returned session. A step change means
// the submission succeeded and the input resets for the next step; on
// failure the step is unchanged and the input keeps its text so the
// user can fix or resubmit.
func (s *SolveScreen) applyTransition(next wizard.Session) (screen.Screen, tea.Cmd) {
	advanced := next.Step != s.sess.Step
	s.sess = next

	if advanced && next.Step != wizard.StepResult {
		s.input = newInput(next.Step)
		return s, s.input.Init()
	}
	if !advanced {
		return s, s.input.Focus()
	}
	return s, nil
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
