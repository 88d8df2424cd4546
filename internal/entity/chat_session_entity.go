package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one turn of a transcript. Role is a closed enum
// (constant.ChatMessageRoleUser / constant.ChatMessageRoleAssistant).
type ChatMessage struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// ChatSession owns the full ordered transcript of one conversation.
// The owning user is immutable after creation. IsActive=false is a soft
// delete: the row is retained but excluded from listings.
type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Messages  []ChatMessage
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
