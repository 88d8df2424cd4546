package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an audit row persisted by the event consumer for every
// domain event published on the in-process bus.
type ActivityLog struct {
	Id        uuid.UUID
	Event     string
	ActorId   *uuid.UUID
	SubjectId *string
	Details   *string
	CreatedAt time.Time
}
