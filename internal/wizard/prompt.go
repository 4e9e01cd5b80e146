package wizard

import (
	"fmt"
	"strings"
)

// buildQuestionsPrompt embeds the problem statement into the
// clarifying-questions prompt.
func buildQuestionsPrompt(problem string) string {
	return fmt.Sprintf(
		`As a student, I have the following problem: "%s". To help me understand this problem better and find a solution, please ask me 3-5 concise, insightful follow-up questions. Format them as a numbered list.`,
		problem,
	)
}

// buildSolutionPrompt consolidates everything the user provided into a
// single prompt instructing the service to produce a labeled
// "Solution:" / "Feedback:" response.
func buildSolutionPrompt(problem, answers, events string) string {
	var b strings.Builder

	b.WriteString("As a student, I need help solving a problem. Here's a structured overview of my situation:\n\n")
	b.WriteString(fmt.Sprintf("Problem: \"%s\"\n\n", problem))
	b.WriteString(fmt.Sprintf("My answers to follow-up questions that clarify the problem:\n\"%s\"\n\n", answers))
	b.WriteString(fmt.Sprintf("Relevant events or specific details that happened:\n\"%s\"\n\n", events))

	b.WriteString(`Based on ALL this information, please do two things:
1. Provide a clear, actionable solution or a set of steps to address my problem.
2. Provide constructive feedback on my overall understanding of the problem and the clarity of the information I provided, suggesting how I could further refine my problem-solving approach in the future.

Label the two parts exactly "Solution:" and "Feedback:".`)

	return b.String()
}
