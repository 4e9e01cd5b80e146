package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "solvo-test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "solution", InputTokens: 300, OutputTokens: 200, LatencyMs: 1500, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "solution", Success: false, ErrorMessage: "generation service unreachable"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Purpose != "solution" || got[0].Success {
		t.Errorf("expected newest event to be the failed solution call, got %+v", got[0])
	}
	if got[2].Purpose != "question-gen" {
		t.Errorf("expected oldest event last, got %q", got[2].Purpose)
	}
}

func TestQueryLLMEventsByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true})
	_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "solution", Success: true})

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "solution"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Purpose != "solution" {
		t.Errorf("expected purpose 'solution', got %q", got[0].Purpose)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "solution",
		Success:      true,
		RequestBody:  "[user]\nhello\n\n",
		ResponseBody: "Solution: do the thing",
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	rec, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected event, got nil")
	}
	if rec.RequestBody != data.RequestBody {
		t.Errorf("request body mismatch: %q", rec.RequestBody)
	}
	if rec.ResponseBody != data.ResponseBody {
		t.Errorf("response body mismatch: %q", rec.ResponseBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "solution", InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true})
	_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "solution", InputTokens: 200, OutputTokens: 60, LatencyMs: 2000, Success: true})

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("expected 1 purpose, got %d", len(usage))
	}
	u := usage[0]
	if u.Calls != 2 || u.InputTokens != 300 || u.OutputTokens != 100 {
		t.Errorf("unexpected aggregate: %+v", u)
	}
	if u.AvgLatencyMs != 1500 {
		t.Errorf("expected avg latency 1500, got %d", u.AvgLatencyMs)
	}
}

func TestSaveAndListSolves(t *testing.T) {
	s := openTestStore(t)
	repo := s.SolveRepo()
	ctx := context.Background()

	older := SolveRecord{
		ID:        "a1",
		Timestamp: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		Problem:   "I keep missing deadlines",
		Questions: "1. Why?\n2. When?",
		Answers:   "Because I procrastinate",
		Events:    "Missed two deadlines last week",
		Solution:  "Plan the week on Monday",
		Feedback:  "Good specificity",
	}
	newer := older
	newer.ID = "b2"
	newer.Timestamp = older.Timestamp.Add(24 * time.Hour)
	newer.Problem = "I can't focus while studying"

	if err := repo.SaveSolve(ctx, older); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveSolve(ctx, newer); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.RecentSolves(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 solves, got %d", len(got))
	}
	if got[0].ID != "b2" {
		t.Errorf("expected newest first, got %q", got[0].ID)
	}
	if got[1].Solution != "Plan the week on Monday" {
		t.Errorf("solution mismatch: %q", got[1].Solution)
	}
}
