package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByPostID struct {
	PostID uuid.UUID
}

func (s ByPostID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("post_id = ?", s.PostID)
}
