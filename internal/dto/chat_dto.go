package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageDTO is one transcript turn as exchanged over the wire. The
// role is validated against the closed enum rather than trusted.
type ChatMessageDTO struct {
	Role      string     `json:"role" validate:"required,oneof=user assistant"`
	Content   string     `json:"content" validate:"required"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// SaveChatRequest carries the full transcript each time: the client holds
// the authoritative in-memory copy and persists it wholesale after every
// turn. Absent ChatId means create.
type SaveChatRequest struct {
	ChatId   *uuid.UUID       `json:"chatId"`
	Messages []ChatMessageDTO `json:"messages" validate:"required,min=1,dive"`
	Title    *string          `json:"title"`
}

type ChatSummaryResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ChatResponse struct {
	Id        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Messages  []ChatMessageDTO `json:"messages"`
	IsActive  bool             `json:"isActive"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type CompleteRequest struct {
	Messages []ChatMessageDTO `json:"messages" validate:"required,min=1,dive"`
}

type CompleteResponse struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
