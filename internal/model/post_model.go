package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description *string   `gorm:"type:text"`
	Link        *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Post) TableName() string {
	return "posts"
}

type Like struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// The compound unique index enforces at most one like per (user, post),
	// closing the concurrent double-toggle race at the storage layer.
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post"`
	PostId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Like) TableName() string {
	return "likes"
}

type Comment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	PostId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Comment) TableName() string {
	return "comments"
}
