package wizard

import (
	"strings"
	"testing"
)

func TestSplitSections_BothMarkers(t *testing.T) {
	sol, fb := SplitSections("Solution: A\nFeedback: B", SolutionMarker, FeedbackMarker)
	if sol != "A" {
		t.Errorf("expected solution 'A', got %q", sol)
	}
	if fb != "B" {
		t.Errorf("expected feedback 'B', got %q", fb)
	}
}

func TestSplitSections_MarkerOrderIndependence(t *testing.T) {
	sol, fb := SplitSections("Feedback: B\nSolution: A", SolutionMarker, FeedbackMarker)
	if sol != "A" {
		t.Errorf("expected solution 'A', got %q", sol)
	}
	if fb != "B" {
		t.Errorf("expected feedback 'B', got %q", fb)
	}
}

func TestSplitSections_CaseInsensitive(t *testing.T) {
	sol, fb := SplitSections("SOLUTION: fix it\nfeedback: good job", SolutionMarker, FeedbackMarker)
	if sol != "fix it" {
		t.Errorf("expected solution 'fix it', got %q", sol)
	}
	if fb != "good job" {
		t.Errorf("expected feedback 'good job', got %q", fb)
	}
}

func TestSplitSections_FirstOccurrenceOnly(t *testing.T) {
	text := "Solution: step one. The solution: is repeated.\nFeedback: fine"
	sol, fb := SplitSections(text, SolutionMarker, FeedbackMarker)
	if !strings.HasPrefix(sol, "step one.") {
		t.Errorf("expected solution to start at first marker, got %q", sol)
	}
	if fb != "fine" {
		t.Errorf("expected feedback 'fine', got %q", fb)
	}
}

func TestSplitSections_OnlySolutionMarker(t *testing.T) {
	sol, fb := SplitSections("Solution: A", SolutionMarker, FeedbackMarker)
	if sol != "A" {
		t.Errorf("expected solution 'A', got %q", sol)
	}
	if fb != NoFeedbackFallback {
		t.Errorf("expected feedback fallback, got %q", fb)
	}
}

func TestSplitSections_OnlyFeedbackMarker(t *testing.T) {
	sol, fb := SplitSections("Feedback: B", SolutionMarker, FeedbackMarker)
	if fb != "B" {
		t.Errorf("expected feedback 'B', got %q", fb)
	}
	if sol != NoSolutionFallback {
		t.Errorf("expected solution fallback, got %q", sol)
	}
}

func TestSplitSections_NeitherMarker(t *testing.T) {
	text := "Here is some advice without any labels."
	sol, fb := SplitSections(text, SolutionMarker, FeedbackMarker)
	if !strings.HasPrefix(sol, UnparsedPrefix) {
		t.Errorf("expected solution to begin with the unparsed notice, got %q", sol)
	}
	if !strings.Contains(sol, text) {
		t.Errorf("expected solution to contain the original text, got %q", sol)
	}
	if fb != "" {
		t.Errorf("expected empty feedback, got %q", fb)
	}
}

func TestSplitSections_TrimsWhitespace(t *testing.T) {
	sol, fb := SplitSections("Solution:   \n  A  \n\nFeedback:\n\n  B  \n", SolutionMarker, FeedbackMarker)
	if sol != "A" {
		t.Errorf("expected trimmed solution 'A', got %q", sol)
	}
	if fb != "B" {
		t.Errorf("expected trimmed feedback 'B', got %q", fb)
	}
}
