package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first answer", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second answer"},
	)

	resp1, err := mock.Generate(context.Background(), UserPrompt("first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first answer" {
		t.Fatalf("expected 'first answer', got %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), UserPrompt("second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second answer" {
		t.Fatalf("expected 'second answer', got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unreachable *ErrUnreachable
	if !errors.As(err, &unreachable) {
		t.Fatalf("expected ErrUnreachable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "ok"},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrService{Code: 503, Err: errors.New("overloaded")}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var svcErr *ErrService
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ErrService, got: %T", err)
	}
	if svcErr.Code != 503 {
		t.Fatalf("expected code 503, got %d", svcErr.Code)
	}
}

func TestUserPrompt(t *testing.T) {
	req := UserPrompt("hello")
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != RoleUser {
		t.Fatalf("expected user role, got %q", req.Messages[0].Role)
	}
	if req.Messages[0].Content != "hello" {
		t.Fatalf("expected 'hello', got %q", req.Messages[0].Content)
	}
}
