package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Description string `json:"description" validate:"max=5000"`
	Link        string `json:"link" validate:"omitempty,url,max=2000"`
}

type PostAuthorResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type PostResponse struct {
	Id          uuid.UUID          `json:"id"`
	Description *string            `json:"description,omitempty"`
	Link        *string            `json:"link,omitempty"`
	ImageUrl    *string            `json:"imageUrl,omitempty"`
	User        PostAuthorResponse `json:"user"`
	Likes       int64              `json:"likes"`
	IsLiked     bool               `json:"isLiked"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type ToggleLikeResponse struct {
	Likes   int64 `json:"likes"`
	IsLiked bool  `json:"isLiked"`
}

type AddCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type CommentResponse struct {
	Id        uuid.UUID          `json:"id"`
	Content   string             `json:"content"`
	User      PostAuthorResponse `json:"user"`
	CreatedAt time.Time          `json:"createdAt"`
}
