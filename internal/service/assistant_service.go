package service

import (
	"context"
	"strings"
	"time"

	"educonnect-be/internal/constant"
	"educonnect-be/internal/dto"
	"educonnect-be/internal/pkg/apperror"
	"educonnect-be/internal/pkg/logger"
	"educonnect-be/pkg/llm"
)

type IAssistantService interface {
	Complete(ctx context.Context, req *dto.CompleteRequest) (*dto.CompleteResponse, error)
}

type assistantService struct {
	provider llm.LLMProvider
	timeout  time.Duration
	log      logger.ILogger
}

func NewAssistantService(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) IAssistantService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &assistantService{
		provider: provider,
		timeout:  timeout,
		log:      log,
	}
}

// buildPrompt renders the transcript into the single-prompt format the
// university assistant was tuned on. The trailing "Assistant:" cue tells
// the model whose turn it is.
func buildPrompt(messages []dto.ChatMessageDTO) string {
	var b strings.Builder
	b.WriteString(constant.UniversitySystemPrompt)
	b.WriteString("\n\nConversation History:\n")
	for _, msg := range messages {
		if msg.Role == constant.ChatMessageRoleUser {
			b.WriteString("Student: ")
		} else {
			b.WriteString("Assistant: ")
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	b.WriteString("\nAssistant:")
	return b.String()
}

func (s *assistantService) Complete(ctx context.Context, req *dto.CompleteRequest) (*dto.CompleteResponse, error) {
	if len(req.Messages) == 0 {
		return nil, apperror.InvalidInput("Messages are required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.provider.Generate(ctx, buildPrompt(req.Messages))
	if err != nil {
		s.log.Error("assistant", "provider call failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.UpstreamUnavailable(constant.AssistantUnavailableMessage, err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = constant.AssistantFallbackMessage
	}

	return &dto.CompleteResponse{
		Content:   reply,
		Timestamp: time.Now(),
	}, nil
}
