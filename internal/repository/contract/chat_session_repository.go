package contract

import (
	"context"

	"educonnect-be/internal/entity"
	"educonnect-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)

	// ReplaceTranscript atomically swaps title and message list on the
	// session matching (id, userId). Returns nil when no row matched, so
	// cross-owner overwrites are impossible by construction.
	ReplaceTranscript(ctx context.Context, id, userId uuid.UUID, title string, messages []entity.ChatMessage) (*entity.ChatSession, error)

	// Deactivate soft-deletes the session matching (id, userId). The
	// returned bool reports whether a row matched; flipping an already
	// inactive session still matches, which keeps the operation idempotent.
	Deactivate(ctx context.Context, id, userId uuid.UUID) (bool, error)

	// DeactivateAllByUser soft-deletes every active session of the user.
	DeactivateAllByUser(ctx context.Context, userId uuid.UUID) error

	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
