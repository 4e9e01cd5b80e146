package wizard

import "strings"

// Markers used to locate the labeled sections in the generated response.
const (
	SolutionMarker = "Solution:"
	FeedbackMarker = "Feedback:"
)

// Fallback text when only one (or neither) marker is present. The split
// is a documented heuristic; these exact fallbacks are part of the
// behavior, not placeholders to improve on.
const (
	NoFeedbackFallback = "No explicit feedback section found, but consider the solution's clarity."
	NoSolutionFallback = "No explicit solution section found, but consider the feedback for your problem-solving."
	UnparsedPrefix     = "AI generated response (could not parse into specific solution/feedback sections):\n"
)

// SplitSections partitions a generated response into a solution and a
// feedback section by locating the first occurrence of each marker,
// case-insensitively.
//
// When both markers are found, the earlier marker's section runs until
// the later marker's start, and the later marker's section runs to the
// end of the text. With only one marker present, its section runs to the
// end and the other side gets a fixed fallback. With neither marker, the
// whole text is returned as the solution behind a "could not parse"
// notice and feedback is empty. Extracted sections are trimmed of
// surrounding whitespace.
//
// Both outputs are best-effort; callers must not assume a clean parse.
func SplitSections(text, solutionMarker, feedbackMarker string) (solution, feedback string) {
	lower := strings.ToLower(text)
	solIdx := strings.Index(lower, strings.ToLower(solutionMarker))
	fbIdx := strings.Index(lower, strings.ToLower(feedbackMarker))

	switch {
	case solIdx >= 0 && fbIdx >= 0:
		if solIdx < fbIdx {
			solution = strings.TrimSpace(text[solIdx+len(solutionMarker) : fbIdx])
			feedback = strings.TrimSpace(text[fbIdx+len(feedbackMarker):])
		} else {
			feedback = strings.TrimSpace(text[fbIdx+len(feedbackMarker) : solIdx])
			solution = strings.TrimSpace(text[solIdx+len(solutionMarker):])
		}

	case solIdx >= 0:
		solution = strings.TrimSpace(text[solIdx+len(solutionMarker):])
		feedback = NoFeedbackFallback

	case fbIdx >= 0:
		feedback = strings.TrimSpace(text[fbIdx+len(feedbackMarker):])
		solution = NoSolutionFallback

	default:
		solution = UnparsedPrefix + text
		feedback = ""
	}

	return solution, feedback
}
