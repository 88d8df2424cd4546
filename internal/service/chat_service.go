package service

import (
	"context"
	"strings"
	"time"

	"educonnect-be/internal/constant"
	"educonnect-be/internal/dto"
	"educonnect-be/internal/entity"
	"educonnect-be/internal/pkg/apperror"
	"educonnect-be/internal/repository/specification"
	"educonnect-be/internal/repository/unitofwork"
	"educonnect-be/pkg/events"

	"github.com/google/uuid"
)

type IChatService interface {
	ListChats(ctx context.Context, userId uuid.UUID) ([]dto.ChatSummaryResponse, error)
	GetChat(ctx context.Context, userId, chatId uuid.UUID) (*dto.ChatResponse, error)
	SaveChat(ctx context.Context, userId uuid.UUID, req *dto.SaveChatRequest) (*dto.ChatResponse, error)
	DeleteChat(ctx context.Context, userId, chatId uuid.UUID) error
	DeleteAllChats(ctx context.Context, userId uuid.UUID) error
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher IEventPublisher
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, eventPublisher IEventPublisher) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// deriveTitle picks a new session's title: the caller's title wins, then a
// prefix of the opening message when the user wrote it, then "New Chat".
// Only messages[0] is inspected; an assistant-opened transcript falls back.
func deriveTitle(title *string, messages []entity.ChatMessage) string {
	if title != nil && strings.TrimSpace(*title) != "" {
		return *title
	}
	if len(messages) > 0 && messages[0].Role == constant.ChatMessageRoleUser {
		runes := []rune(messages[0].Content)
		if len(runes) > constant.ChatTitleMaxLen {
			return string(runes[:constant.ChatTitleMaxLen]) + "..."
		}
		return messages[0].Content
	}
	return constant.ChatTitleFallbackNew
}

// updateTitle keeps the caller's title on update, else the fixed rename.
// Messages never drive an updated session's title.
func updateTitle(title *string) string {
	if title != nil && strings.TrimSpace(*title) != "" {
		return *title
	}
	return constant.ChatTitleFallbackUpdated
}

func messagesFromDTO(in []dto.ChatMessageDTO) []entity.ChatMessage {
	out := make([]entity.ChatMessage, len(in))
	for i, msg := range in {
		ts := time.Now()
		if msg.Timestamp != nil {
			ts = *msg.Timestamp
		}
		out[i] = entity.ChatMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: ts,
		}
	}
	return out
}

func messagesToDTO(in []entity.ChatMessage) []dto.ChatMessageDTO {
	out := make([]dto.ChatMessageDTO, len(in))
	for i, msg := range in {
		ts := msg.Timestamp
		out[i] = dto.ChatMessageDTO{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: &ts,
		}
	}
	return out
}

func chatResponse(session *entity.ChatSession) *dto.ChatResponse {
	return &dto.ChatResponse{
		Id:        session.Id,
		Title:     session.Title,
		Messages:  messagesToDTO(session.Messages),
		IsActive:  session.IsActive,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func (s *chatService) ListChats(ctx context.Context, userId uuid.UUID) ([]dto.ChatSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveOnly{},
		specification.Pagination{Limit: constant.ChatListLimit},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}

	summaries := make([]dto.ChatSummaryResponse, len(sessions))
	for i, session := range sessions {
		summaries[i] = dto.ChatSummaryResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		}
	}
	return summaries, nil
}

func (s *chatService) GetChat(ctx context.Context, userId, chatId uuid.UUID) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// No ActiveOnly here: an owner may still open a soft-deleted session
	// by id even though listings exclude it.
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: chatId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if session == nil {
		return nil, apperror.NotFound("Chat not found")
	}
	return chatResponse(session), nil
}

func (s *chatService) SaveChat(ctx context.Context, userId uuid.UUID, req *dto.SaveChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages := messagesFromDTO(req.Messages)

	if req.ChatId == nil {
		session := &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    userId,
			Title:     deriveTitle(req.Title, messages),
			Messages:  messages,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, apperror.Store(err)
		}

		s.eventPublisher.Publish(ctx, events.ChatSaved, userId.String(), session.Id.String(), map[string]interface{}{
			"messages": len(messages),
			"created":  true,
		})
		return chatResponse(session), nil
	}

	title := updateTitle(req.Title)
	session, err := uow.ChatSessionRepository().ReplaceTranscript(ctx, *req.ChatId, userId, title, messages)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if session == nil {
		return nil, apperror.NotFound("Chat not found")
	}

	s.eventPublisher.Publish(ctx, events.ChatSaved, userId.String(), session.Id.String(), map[string]interface{}{
		"messages": len(messages),
		"created":  false,
	})
	return chatResponse(session), nil
}

func (s *chatService) DeleteChat(ctx context.Context, userId, chatId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	matched, err := uow.ChatSessionRepository().Deactivate(ctx, chatId, userId)
	if err != nil {
		return apperror.Store(err)
	}
	if !matched {
		return apperror.NotFound("Chat not found")
	}
	return nil
}

func (s *chatService) DeleteAllChats(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ChatSessionRepository().DeactivateAllByUser(ctx, userId); err != nil {
		return apperror.Store(err)
	}
	return nil
}
