package contract

import (
	"context"

	"educonnect-be/internal/entity"
	"educonnect-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Post, error)

	// FindAllWithStats returns posts newest-first, each annotated with its
	// author and the viewer's like state plus the total like count, in a
	// single joined query.
	FindAllWithStats(ctx context.Context, viewerId uuid.UUID, limit, offset int) ([]*entity.PostWithStats, error)

	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type LikeRepository interface {
	// Insert adds a like, relying on the unique (user_id, post_id) index.
	// Returns false when the pair already exists (conflict, nothing done).
	Insert(ctx context.Context, like *entity.Like) (bool, error)

	// DeleteByUserAndPost removes a like; returns whether a row was removed.
	DeleteByUserAndPost(ctx context.Context, userId, postId uuid.UUID) (bool, error)

	CountByPost(ctx context.Context, postId uuid.UUID) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error

	// FindAllByPost returns comments newest-first with author fields joined.
	FindAllByPost(ctx context.Context, postId uuid.UUID, limit, offset int) ([]*entity.Comment, error)

	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
