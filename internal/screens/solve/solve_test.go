package solve

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solvo/internal/llm"
	"github.com/abhisek/solvo/internal/wizard"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testSolveScreen(responses ...llm.MockResponse) (*SolveScreen, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	svc := wizard.NewService(mock, nil)
	return New(svc), mock
}

// drain runs a command and feeds any resulting messages back through
// Update until no command remains, like the program loop would.
func drain(t *testing.T, s *SolveScreen, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i < 20; i++ {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c == nil {
					continue
				}
				if inner := c(); inner != nil {
					if _, isTick := inner.(spinnerTickMsg); isTick {
						continue
					}
					_, cmd = s.Update(inner)
				}
			}
			continue
		}
		if _, isTick := msg.(spinnerTickMsg); isTick {
			return
		}
		_, cmd = s.Update(msg)
	}
}

func TestStartsAtProblemStep(t *testing.T) {
	s, _ := testSolveScreen()
	if s.sess.Step != wizard.StepProblem {
		t.Errorf("expected StepProblem, got %v", s.sess.Step)
	}
	cur, total := s.StepIndicator()
	if cur != 1 || total != 4 {
		t.Errorf("expected step 1/4, got %d/%d", cur, total)
	}
}

func TestSubmitEmptyProblemShowsValidation(t *testing.T) {
	s, mock := testSolveScreen()

	_, cmd := s.Update(ctrlKey('s'))
	drain(t, s, cmd)

	if s.sess.Step != wizard.StepProblem {
		t.Errorf("step advanced to %v", s.sess.Step)
	}
	if s.sess.ErrMsg == "" {
		t.Error("expected a validation notice")
	}
	if mock.CallCount() != 0 {
		t.Errorf("no generation call expected, got %d", mock.CallCount())
	}

	view := s.View(80, 24)
	if !strings.Contains(view, s.sess.ErrMsg) {
		t.Error("validation notice should be rendered")
	}
}

func TestSubmitProblemAdvancesToQuestions(t *testing.T) {
	s, _ := testSolveScreen(
		llm.MockResponse{Text: "1. What have you tried?"},
	)

	s.input.SetValue("my deploy keeps failing")
	_, cmd := s.Update(ctrlKey('s'))

	if !s.pending {
		t.Error("screen should be pending while generating")
	}
	drain(t, s, cmd)

	if s.pending {
		t.Error("pending should clear once the transition lands")
	}
	if s.sess.Step != wizard.StepQuestions {
		t.Fatalf("expected StepQuestions, got %v", s.sess.Step)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "What have you tried?") {
		t.Error("questions should be rendered on the questions step")
	}
}

func TestGenerationFailureStaysOnStep(t *testing.T) {
	s, _ := testSolveScreen(
		llm.MockResponse{Err: &llm.ErrUnreachable{Err: errors.New("timeout")}},
	)

	s.input.SetValue("a real problem")
	_, cmd := s.Update(ctrlKey('s'))
	drain(t, s, cmd)

	if s.sess.Step != wizard.StepProblem {
		t.Errorf("step advanced despite failure: %v", s.sess.Step)
	}
	if s.sess.ErrMsg == "" {
		t.Error("expected a failure banner")
	}
	if s.input.Value() != "a real problem" {
		t.Errorf("input should keep its text on failure, got %q", s.input.Value())
	}
}

func TestKeysIgnoredWhilePending(t *testing.T) {
	s, _ := testSolveScreen(
		llm.MockResponse{Text: "1. Q?"},
	)

	s.input.SetValue("problem")
	s.Update(ctrlKey('s'))

	// Typing while pending must not reach the input.
	s.Update(keyPress('x'))
	if strings.Contains(s.input.Value(), "x") {
		t.Error("input should be ignored while pending")
	}
}

func TestFullFlowReachesResult(t *testing.T) {
	s, mock := testSolveScreen(
		llm.MockResponse{Text: "1. When did it start?"},
		llm.MockResponse{Text: "Solution: restart it\nFeedback: good detail"},
	)

	s.input.SetValue("server crashes nightly")
	_, cmd := s.Update(ctrlKey('s'))
	drain(t, s, cmd)

	s.input.SetValue("it started last tuesday")
	_, cmd = s.Update(ctrlKey('s'))
	drain(t, s, cmd)
	if s.sess.Step != wizard.StepEvents {
		t.Fatalf("expected StepEvents, got %v", s.sess.Step)
	}

	s.input.SetValue("crash at 02:00, after backup job")
	_, cmd = s.Update(ctrlKey('s'))
	drain(t, s, cmd)

	if s.sess.Step != wizard.StepResult {
		t.Fatalf("expected StepResult, got %v", s.sess.Step)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 generation calls, got %d", mock.CallCount())
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "restart it") {
		t.Error("solution should be rendered")
	}
	if !strings.Contains(view, "good detail") {
		t.Error("feedback should be rendered")
	}
}

func TestRestartFromResult(t *testing.T) {
	s, _ := testSolveScreen()
	s.sess = wizard.Session{
		Step:     wizard.StepResult,
		Problem:  "p",
		Solution: "s",
		Feedback: "f",
	}

	s.Update(keyPress('r'))

	if s.sess.Step != wizard.StepProblem {
		t.Errorf("expected StepProblem after restart, got %v", s.sess.Step)
	}
	if s.sess.Solution != "" || s.sess.Problem != "" {
		t.Error("restart should clear the session")
	}
	if s.input.Value() != "" {
		t.Errorf("restart should clear the input, got %q", s.input.Value())
	}
}

func TestEscapePopsToHome(t *testing.T) {
	s, _ := testSolveScreen()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
}

func TestTitleFollowsStep(t *testing.T) {
	s, _ := testSolveScreen()
	if s.Title() != wizard.StepProblem.String() {
		t.Errorf("unexpected title %q", s.Title())
	}

	s.sess.Step = wizard.StepResult
	if s.Title() != wizard.StepResult.String() {
		t.Errorf("unexpected title %q", s.Title())
	}
}
