package unitofwork

import (
	"context"

	"educonnect-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	PostRepository() contract.PostRepository
	LikeRepository() contract.LikeRepository
	CommentRepository() contract.CommentRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
