package mapper

import (
	"encoding/json"
	"fmt"
	"time"

	"educonnect-be/internal/entity"
	"educonnect-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// messageDoc is the JSONB wire shape of one transcript turn.
type messageDoc struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *ChatMapper) MessagesToJSON(messages []entity.ChatMessage) (datatypes.JSON, error) {
	docs := make([]messageDoc, len(messages))
	for i, msg := range messages {
		docs[i] = messageDoc{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		}
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal transcript: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func (m *ChatMapper) MessagesFromJSON(raw datatypes.JSON) ([]entity.ChatMessage, error) {
	if len(raw) == 0 {
		return []entity.ChatMessage{}, nil
	}
	var docs []messageDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("unmarshal transcript: %w", err)
	}
	messages := make([]entity.ChatMessage, len(docs))
	for i, d := range docs {
		messages[i] = entity.ChatMessage{
			Role:      d.Role,
			Content:   d.Content,
			Timestamp: d.Timestamp,
		}
	}
	return messages, nil
}

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) (*entity.ChatSession, error) {
	if s == nil {
		return nil, nil
	}

	messages, err := m.MessagesFromJSON(s.Messages)
	if err != nil {
		return nil, err
	}

	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		Messages:  messages,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) (*model.ChatSession, error) {
	if s == nil {
		return nil, nil
	}

	raw, err := m.MessagesToJSON(s.Messages)
	if err != nil {
		return nil, err
	}

	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		Messages:  raw,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}
