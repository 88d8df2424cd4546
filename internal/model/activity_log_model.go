package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Event     string     `gorm:"type:varchar(100);not null;index"`
	ActorId   *uuid.UUID `gorm:"type:uuid;index"`
	SubjectId *string    `gorm:"type:varchar(100)"`
	Details   *string    `gorm:"type:jsonb"`
	CreatedAt time.Time  `gorm:"default:now();not null;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
