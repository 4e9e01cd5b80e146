package wizard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/solvo/internal/llm"
	"github.com/abhisek/solvo/internal/store"
)

// Validation notices shown inline when a required field is empty.
const (
	MsgProblemRequired = "Please describe your problem to proceed."
	MsgAnswersRequired = "Please answer the questions to proceed."
	MsgEventsRequired  = "Please provide some relevant events or details to proceed."
)

// Token ceilings for the two generation calls.
const (
	maxQuestionTokens = 1024
	maxSolutionTokens = 4096
)

// Service orchestrates the wizard transitions that involve the
// generation provider. Transitions that fail — validation or generation
// — return the session with ErrMsg set and the step unchanged; the user
// retries by resubmitting.
type Service struct {
	provider llm.Provider
	solves   store.SolveRepo // optional; nil disables archiving
}

// NewService creates a Service. solves may be nil.
func NewService(provider llm.Provider, solves store.SolveRepo) *Service {
	return &Service{provider: provider, solves: solves}
}

// SubmitProblem handles the StepProblem submission: validate the problem
// statement, generate clarifying questions, advance to StepQuestions.
func (s *Service) SubmitProblem(ctx context.Context, sess Session) Session {
	sess.ErrMsg = ""

	if strings.TrimSpace(sess.Problem) == "" {
		sess.ErrMsg = MsgProblemRequired
		return sess
	}

	ctx = llm.WithPurpose(ctx, "question-gen")
	req := llm.UserPrompt(buildQuestionsPrompt(sess.Problem))
	req.MaxTokens = maxQuestionTokens

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		sess.ErrMsg = generationErrMessage(err)
		return sess
	}

	sess.Questions = strings.TrimSpace(resp.Text)
	sess.Step = StepQuestions
	return sess
}

// SubmitAnswers handles the StepQuestions submission. No generation call
// happens here; the answers are just validated and carried forward.
func (s *Service) SubmitAnswers(sess Session) Session {
	sess.ErrMsg = ""

	if strings.TrimSpace(sess.Answers) == "" {
		sess.ErrMsg = MsgAnswersRequired
		return sess
	}

	sess.Step = StepEvents
	return sess
}

// SubmitEvents handles the StepEvents submission: validate, run the
// consolidated generation call, split the response into solution and
// feedback, advance to StepResult. On success the completed solve is
// archived (best-effort) for the history views.
func (s *Service) SubmitEvents(ctx context.Context, sess Session) Session {
	sess.ErrMsg = ""

	if strings.TrimSpace(sess.Events) == "" {
		sess.ErrMsg = MsgEventsRequired
		return sess
	}

	genCtx := llm.WithPurpose(ctx, "solution")
	req := llm.UserPrompt(buildSolutionPrompt(sess.Problem, sess.Answers, sess.Events))
	req.MaxTokens = maxSolutionTokens

	resp, err := s.provider.Generate(genCtx, req)
	if err != nil {
		sess.ErrMsg = generationErrMessage(err)
		return sess
	}

	sess.Solution, sess.Feedback = SplitSections(resp.Text, SolutionMarker, FeedbackMarker)
	sess.Step = StepResult

	s.archive(ctx, sess)
	return sess
}

// archive stores the completed solve. Failures are reported on stderr
// but never block the wizard.
func (s *Service) archive(ctx context.Context, sess Session) {
	if s.solves == nil {
		return
	}
	rec := store.SolveRecord{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Problem:   sess.Problem,
		Questions: sess.Questions,
		Answers:   sess.Answers,
		Events:    sess.Events,
		Solution:  sess.Solution,
		Feedback:  sess.Feedback,
	}
	if err := s.solves.SaveSolve(ctx, rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to archive solve: %v\n", err)
	}
}

// generationErrMessage maps a typed generation failure to the banner
// text shown to the user.
func generationErrMessage(err error) string {
	var unreachable *llm.ErrUnreachable
	if errors.As(err, &unreachable) {
		return "Error: Failed to connect to AI. Please check your network or try again later."
	}

	var empty *llm.ErrEmptyResponse
	if errors.As(err, &empty) {
		return "Error: Could not get a valid response from AI. Please try again."
	}

	var svc *llm.ErrService
	if errors.As(err, &svc) {
		return fmt.Sprintf("Error: The AI service returned an error (HTTP %d). Please try again later.", svc.Code)
	}

	return fmt.Sprintf("Error: %v", err)
}
