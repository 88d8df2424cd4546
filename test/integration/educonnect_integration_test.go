package integration

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"educonnect-be/internal/constant"
	"educonnect-be/internal/entity"
	"educonnect-be/internal/repository/specification"
	"educonnect-be/internal/repository/unitofwork"
	"educonnect-be/internal/service"
	"educonnect-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "failed to connect to DB")

	return unitofwork.NewRepositoryFactory(gormDB)
}

func newTestUow(t *testing.T) unitofwork.UnitOfWork {
	t.Helper()
	return newTestFactory(t).NewUnitOfWork(context.Background())
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, event string, actorId, subjectId string, details map[string]interface{}) {
}

func createTestUser(t *testing.T, uow unitofwork.UnitOfWork) *entity.User {
	t.Helper()
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	user := &entity.User{
		Id:           uuid.New(),
		Email:        "test-integration-" + uuid.New().String() + "@example.com",
		FullName:     "Integration Test User",
		PasswordHash: &hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func TestChatSessionLifecycle(t *testing.T) {
	uow := newTestUow(t)
	ctx := context.Background()
	owner := createTestUser(t, uow)
	stranger := createTestUser(t, uow)

	session := &entity.ChatSession{
		Id:     uuid.New(),
		UserId: owner.Id,
		Title:  "Admission requirements",
		Messages: []entity.ChatMessage{
			{Role: "user", Content: "What are the admission requirements?", Timestamp: time.Now()},
			{Role: "assistant", Content: "You need your intermediate transcripts.", Timestamp: time.Now()},
		},
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, uow.ChatSessionRepository().Create(ctx, session))

	t.Run("round trip preserves transcript", func(t *testing.T) {
		got, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
			specification.UserOwnedBy{UserID: owner.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Admission requirements", got.Title)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "user", got.Messages[0].Role)
		assert.Equal(t, "What are the admission requirements?", got.Messages[0].Content)
		assert.Equal(t, "assistant", got.Messages[1].Role)
	})

	t.Run("other user cannot see the session", func(t *testing.T) {
		got, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
			specification.UserOwnedBy{UserID: stranger.Id},
		)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("replace transcript is owner scoped", func(t *testing.T) {
		updated, err := uow.ChatSessionRepository().ReplaceTranscript(ctx, session.Id, stranger.Id, "hijacked", nil)
		require.NoError(t, err)
		assert.Nil(t, updated, "cross-owner update must match no row")

		newMessages := append(session.Messages, entity.ChatMessage{
			Role: "user", Content: "And the fees?", Timestamp: time.Now(),
		})
		updated, err = uow.ChatSessionRepository().ReplaceTranscript(ctx, session.Id, owner.Id, "Admission requirements", newMessages)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Len(t, updated.Messages, 3)
	})

	t.Run("deactivate hides from listing but not from get", func(t *testing.T) {
		matched, err := uow.ChatSessionRepository().Deactivate(ctx, session.Id, owner.Id)
		require.NoError(t, err)
		assert.True(t, matched)

		listed, err := uow.ChatSessionRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: owner.Id},
			specification.ActiveOnly{},
		)
		require.NoError(t, err)
		for _, s := range listed {
			assert.NotEqual(t, session.Id, s.Id, "inactive session must not be listed")
		}

		got, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
			specification.UserOwnedBy{UserID: owner.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, got, "owner can still fetch a soft-deleted session by id")
		assert.False(t, got.IsActive)
	})

	t.Run("deactivate is idempotent", func(t *testing.T) {
		matched, err := uow.ChatSessionRepository().Deactivate(ctx, session.Id, owner.Id)
		require.NoError(t, err)
		assert.True(t, matched, "second deactivate still matches the row")
	})
}

func TestChatListingCapsAtLimit(t *testing.T) {
	factory := newTestFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	owner := createTestUser(t, uow)

	seeded := constant.ChatListLimit + 5
	for i := 0; i < seeded; i++ {
		require.NoError(t, uow.ChatSessionRepository().Create(ctx, &entity.ChatSession{
			Id:     uuid.New(),
			UserId: owner.Id,
			Title:  fmt.Sprintf("Session %d", i),
			Messages: []entity.ChatMessage{
				{Role: "user", Content: "hello", Timestamp: time.Now()},
			},
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}))
	}

	chatService := service.NewChatService(factory, noopPublisher{})
	summaries, err := chatService.ListChats(ctx, owner.Id)
	require.NoError(t, err)
	assert.Len(t, summaries, constant.ChatListLimit, "listing returns at most %d sessions", constant.ChatListLimit)
}

func TestDuplicateEmailSurfacesAsDuplicatedKey(t *testing.T) {
	uow := newTestUow(t)
	ctx := context.Background()
	user := createTestUser(t, uow)

	dup := &entity.User{
		Id:        uuid.New(),
		Email:     user.Email,
		FullName:  "Second Registration",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	err := uow.UserRepository().Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey),
		"unique email violation must translate to gorm.ErrDuplicatedKey")
}

func TestLikeUniqueness(t *testing.T) {
	uow := newTestUow(t)
	ctx := context.Background()
	user := createTestUser(t, uow)

	description := "integration test post"
	post := &entity.Post{
		Id:          uuid.New(),
		UserId:      user.Id,
		Description: &description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, uow.PostRepository().Create(ctx, post))

	inserted, err := uow.LikeRepository().Insert(ctx, &entity.Like{
		Id: uuid.New(), UserId: user.Id, PostId: post.Id, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	// Second insert conflicts on the unique (user_id, post_id) index.
	inserted, err = uow.LikeRepository().Insert(ctx, &entity.Like{
		Id: uuid.New(), UserId: user.Id, PostId: post.Id, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	count, err := uow.LikeRepository().CountByPost(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err := uow.LikeRepository().DeleteByUserAndPost(ctx, user.Id, post.Id)
	require.NoError(t, err)
	assert.True(t, deleted)

	count, err = uow.LikeRepository().CountByPost(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCommentsJoinAuthor(t *testing.T) {
	uow := newTestUow(t)
	ctx := context.Background()
	author := createTestUser(t, uow)
	commenter := createTestUser(t, uow)

	description := "comment test post"
	post := &entity.Post{
		Id:          uuid.New(),
		UserId:      author.Id,
		Description: &description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, uow.PostRepository().Create(ctx, post))

	require.NoError(t, uow.CommentRepository().Create(ctx, &entity.Comment{
		Id:        uuid.New(),
		UserId:    commenter.Id,
		PostId:    post.Id,
		Content:   "count me in",
		CreatedAt: time.Now(),
	}))

	count, err := uow.CommentRepository().Count(ctx, specification.ByPostID{PostID: post.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	comments, err := uow.CommentRepository().FindAllByPost(ctx, post.Id, 50, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "count me in", comments[0].Content)
	assert.Equal(t, commenter.FullName, comments[0].AuthorName)
	assert.Equal(t, commenter.Email, comments[0].AuthorEmail)
}

func TestFeedAnnotation(t *testing.T) {
	uow := newTestUow(t)
	ctx := context.Background()
	author := createTestUser(t, uow)
	viewer := createTestUser(t, uow)

	description := "feed annotation post"
	post := &entity.Post{
		Id:          uuid.New(),
		UserId:      author.Id,
		Description: &description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, uow.PostRepository().Create(ctx, post))

	_, err := uow.LikeRepository().Insert(ctx, &entity.Like{
		Id: uuid.New(), UserId: viewer.Id, PostId: post.Id, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	findPost := func(posts []*entity.PostWithStats) *entity.PostWithStats {
		for _, p := range posts {
			if p.Id == post.Id {
				return p
			}
		}
		return nil
	}

	asViewer, err := uow.PostRepository().FindAllWithStats(ctx, viewer.Id, 100, 0)
	require.NoError(t, err)
	got := findPost(asViewer)
	require.NotNil(t, got)
	assert.Equal(t, author.FullName, got.AuthorName)
	assert.Equal(t, int64(1), got.LikeCount)
	assert.True(t, got.ViewerLiked)

	asAuthor, err := uow.PostRepository().FindAllWithStats(ctx, author.Id, 100, 0)
	require.NoError(t, err)
	got = findPost(asAuthor)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.LikeCount)
	assert.False(t, got.ViewerLiked, "like state is viewer dependent")
}
