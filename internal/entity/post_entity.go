package entity

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Description *string
	Link        *string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PostWithStats is the feed read model: a post annotated with its author
// and the viewer-dependent derived fields. Computed at read time, never
// stored.
type PostWithStats struct {
	Post
	AuthorName  string
	AuthorEmail string
	LikeCount   int64
	ViewerLiked bool
}

type Like struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	PostId    uuid.UUID
	CreatedAt time.Time
}

type Comment struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	PostId      uuid.UUID
	Content     string
	CreatedAt   time.Time
	AuthorName  string
	AuthorEmail string
}
