package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"educonnect-be/internal/constant"
	"educonnect-be/internal/dto"
	"educonnect-be/internal/pkg/apperror"
	"educonnect-be/pkg/llm"
)

type stubProvider struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) > 0 {
		s.lastPrompt = history[len(history)-1].Content
	}
	return s.reply, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestCompleteReturnsProviderReply(t *testing.T) {
	provider := &stubProvider{reply: "The library is open until 10pm."}
	svc := NewAssistantService(provider, time.Second, nopLogger{})

	res, err := svc.Complete(context.Background(), &dto.CompleteRequest{
		Messages: []dto.ChatMessageDTO{{Role: "user", Content: "Library hours?"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Content != "The library is open until 10pm." {
		t.Errorf("unexpected content: %q", res.Content)
	}
	if res.Timestamp.IsZero() {
		t.Error("expected a timestamp on the response")
	}
}

func TestCompleteEmptyReplyUsesFallback(t *testing.T) {
	svc := NewAssistantService(&stubProvider{reply: "   "}, time.Second, nopLogger{})

	res, err := svc.Complete(context.Background(), &dto.CompleteRequest{
		Messages: []dto.ChatMessageDTO{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Content != constant.AssistantFallbackMessage {
		t.Errorf("expected fallback message, got %q", res.Content)
	}
}

func TestCompleteProviderFailure(t *testing.T) {
	svc := NewAssistantService(&stubProvider{err: errors.New("connection refused")}, time.Second, nopLogger{})

	_, err := svc.Complete(context.Background(), &dto.CompleteRequest{
		Messages: []dto.ChatMessageDTO{{Role: "user", Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if apperror.KindOf(err) != apperror.KindUpstreamUnavailable {
		t.Errorf("expected upstream unavailable, got kind %v", apperror.KindOf(err))
	}
	if err.Error() != constant.AssistantUnavailableMessage {
		t.Errorf("provider detail must not leak, got %q", err.Error())
	}
}

func TestCompleteRejectsEmptyMessages(t *testing.T) {
	svc := NewAssistantService(&stubProvider{}, time.Second, nopLogger{})

	_, err := svc.Complete(context.Background(), &dto.CompleteRequest{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if apperror.KindOf(err) != apperror.KindInvalidInput {
		t.Errorf("expected invalid input, got kind %v", apperror.KindOf(err))
	}
}

func TestBuildPromptFormat(t *testing.T) {
	prompt := buildPrompt([]dto.ChatMessageDTO{
		{Role: "user", Content: "What programs do you offer?"},
		{Role: "assistant", Content: "We offer BSCS, BBA and more."},
		{Role: "user", Content: "What about fees?"},
	})

	if !strings.HasPrefix(prompt, constant.UniversitySystemPrompt) {
		t.Error("prompt must start with the system prompt")
	}
	if !strings.Contains(prompt, "Conversation History:") {
		t.Error("prompt must contain the history header")
	}
	if !strings.Contains(prompt, "Student: What programs do you offer?\n") {
		t.Error("user turns must be rendered as Student lines")
	}
	if !strings.Contains(prompt, "Assistant: We offer BSCS, BBA and more.\n") {
		t.Error("assistant turns must be rendered as Assistant lines")
	}
	if !strings.HasSuffix(prompt, "Assistant:") {
		t.Error("prompt must end with the Assistant cue")
	}

	// Turn order must be preserved.
	first := strings.Index(prompt, "What programs do you offer?")
	second := strings.Index(prompt, "We offer BSCS")
	third := strings.Index(prompt, "What about fees?")
	if !(first < second && second < third) {
		t.Error("prompt must preserve transcript order")
	}
}
