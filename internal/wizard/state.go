// Package wizard implements the four-step guided problem-solving flow:
// describe a problem, answer AI-generated clarifying questions, supply
// supporting events, and receive a synthesized solution/feedback pair.
//
// All flow state lives in an explicit Session value that transition
// handlers take and return; there are no package-level globals.
package wizard

// Step is the wizard's current position in the linear flow.
type Step int

const (
	// StepProblem collects the user's problem statement.
	StepProblem Step = iota
	// StepQuestions shows the generated clarifying questions and
	// collects the user's answers.
	StepQuestions
	// StepEvents collects supporting events or specific details.
	StepEvents
	// StepResult shows the synthesized solution and feedback.
	StepResult
)

// StepCount is the total number of wizard steps.
const StepCount = 4

func (s Step) String() string {
	switch s {
	case StepProblem:
		return "problem"
	case StepQuestions:
		return "questions"
	case StepEvents:
		return "events"
	case StepResult:
		return "result"
	default:
		return "unknown"
	}
}

// Ordinal returns the 1-based step number for display.
func (s Step) Ordinal() int {
	return int(s) + 1
}

// Session is the single mutable record for one guided solve.
// It is created empty at session start and discarded on restart;
// nothing here persists across sessions.
type Session struct {
	Step Step

	// Problem is the user-entered problem statement.
	Problem string

	// Questions holds the AI-generated clarifying questions,
	// set when entering StepQuestions.
	Questions string

	// Answers is the user's answers to the clarifying questions.
	Answers string

	// Events is the user-entered supporting events or details.
	Events string

	// Solution and Feedback are derived by the splitter at the
	// StepEvents → StepResult transition and cleared only on restart.
	Solution string
	Feedback string

	// ErrMsg is a transient validation or generation failure notice.
	// Entering any step clears it.
	ErrMsg string
}

// NewSession returns a Session at StepProblem with empty defaults.
func NewSession() Session {
	return Session{Step: StepProblem}
}

// Restart discards all state and returns a fresh session.
func Restart() Session {
	return NewSession()
}
