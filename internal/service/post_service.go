package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"educonnect-be/internal/dto"
	"educonnect-be/internal/entity"
	"educonnect-be/internal/pkg/apperror"
	"educonnect-be/internal/pkg/logger"
	"educonnect-be/internal/repository/specification"
	"educonnect-be/internal/repository/unitofwork"
	"educonnect-be/pkg/events"
	"educonnect-be/pkg/storage"

	"github.com/google/uuid"
)

const (
	commentPageDefault = 50
	commentPageMax     = 200
	feedPageDefault    = 50
	feedPageMax        = 200
)

type PostImage struct {
	FileName    string
	ContentType string
	Data        []byte
}

type IPostService interface {
	CreatePost(ctx context.Context, userId uuid.UUID, req *dto.CreatePostRequest, image *PostImage) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, viewerId uuid.UUID, limit, offset int) ([]dto.PostResponse, error)
	ToggleLike(ctx context.Context, userId, postId uuid.UUID) (*dto.ToggleLikeResponse, error)
	AddComment(ctx context.Context, userId, postId uuid.UUID, req *dto.AddCommentRequest) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, postId uuid.UUID, limit, offset int) ([]dto.CommentResponse, error)
}

type postService struct {
	uowFactory     unitofwork.RepositoryFactory
	storage        *storage.Storage
	eventPublisher IEventPublisher
	log            logger.ILogger
}

func NewPostService(uowFactory unitofwork.RepositoryFactory, store *storage.Storage, eventPublisher IEventPublisher, log logger.ILogger) IPostService {
	return &postService{
		uowFactory:     uowFactory,
		storage:        store,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func clampPage(limit, offset, def, max int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *postService) CreatePost(ctx context.Context, userId uuid.UUID, req *dto.CreatePostRequest, image *PostImage) (*dto.PostResponse, error) {
	description := strings.TrimSpace(req.Description)
	link := strings.TrimSpace(req.Link)
	if description == "" && link == "" && image == nil {
		return nil, apperror.InvalidInput("Post must have a description, link or image")
	}

	post := &entity.Post{
		Id:        uuid.New(),
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if description != "" {
		post.Description = &description
	}
	if link != "" {
		post.Link = &link
	}

	// Upload before insert so a failed upload never leaves a post row
	// pointing at a missing object.
	if image != nil {
		key := fmt.Sprintf("posts/%s%s", post.Id, strings.ToLower(filepath.Ext(image.FileName)))
		if err := s.storage.Put(ctx, key, image.ContentType, image.Data); err != nil {
			return nil, apperror.Store(err)
		}
		imageURL := s.storage.PublicURL(key)
		post.ImageURL = &imageURL
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.PostRepository().Create(ctx, post); err != nil {
		if post.ImageURL != nil {
			key := fmt.Sprintf("posts/%s%s", post.Id, strings.ToLower(filepath.Ext(image.FileName)))
			if cleanupErr := s.storage.Remove(ctx, key); cleanupErr != nil {
				s.log.Warn("post", "failed to remove orphaned image", map[string]interface{}{"key": key, "error": cleanupErr.Error()})
			}
		}
		return nil, apperror.Store(err)
	}

	author, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || author == nil {
		return nil, apperror.Store(err)
	}

	s.eventPublisher.Publish(ctx, events.PostCreated, userId.String(), post.Id.String(), map[string]interface{}{
		"has_image": post.ImageURL != nil,
	})

	return &dto.PostResponse{
		Id:          post.Id,
		Description: post.Description,
		Link:        post.Link,
		ImageUrl:    post.ImageURL,
		User: dto.PostAuthorResponse{
			Id:    author.Id,
			Name:  author.FullName,
			Email: author.Email,
		},
		Likes:     0,
		IsLiked:   false,
		CreatedAt: post.CreatedAt,
	}, nil
}

func (s *postService) ListPosts(ctx context.Context, viewerId uuid.UUID, limit, offset int) ([]dto.PostResponse, error) {
	limit, offset = clampPage(limit, offset, feedPageDefault, feedPageMax)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	posts, err := uow.PostRepository().FindAllWithStats(ctx, viewerId, limit, offset)
	if err != nil {
		return nil, apperror.Store(err)
	}

	responses := make([]dto.PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = dto.PostResponse{
			Id:          post.Id,
			Description: post.Description,
			Link:        post.Link,
			ImageUrl:    post.ImageURL,
			User: dto.PostAuthorResponse{
				Id:    post.UserId,
				Name:  post.AuthorName,
				Email: post.AuthorEmail,
			},
			Likes:     post.LikeCount,
			IsLiked:   post.ViewerLiked,
			CreatedAt: post.CreatedAt,
		}
	}
	return responses, nil
}

func (s *postService) ToggleLike(ctx context.Context, userId, postId uuid.UUID) (*dto.ToggleLikeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: postId})
	if err != nil {
		return nil, apperror.Store(err)
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found")
	}

	// The toggle writes and the returned count must be one consistent view.
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Store(err)
	}
	defer uow.Rollback()

	// Insert first; the unique (user_id, post_id) index turns the racy
	// check-then-act into a single atomic step. A conflict means the like
	// already existed, so the toggle removes it instead.
	inserted, err := uow.LikeRepository().Insert(ctx, &entity.Like{
		Id:        uuid.New(),
		UserId:    userId,
		PostId:    postId,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, apperror.Store(err)
	}

	isLiked := true
	if !inserted {
		if _, err := uow.LikeRepository().DeleteByUserAndPost(ctx, userId, postId); err != nil {
			return nil, apperror.Store(err)
		}
		isLiked = false
	}

	count, err := uow.LikeRepository().CountByPost(ctx, postId)
	if err != nil {
		return nil, apperror.Store(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.ToggleLikeResponse{Likes: count, IsLiked: isLiked}, nil
}

func (s *postService) AddComment(ctx context.Context, userId, postId uuid.UUID, req *dto.AddCommentRequest) (*dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperror.InvalidInput("Comment content is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: postId})
	if err != nil {
		return nil, apperror.Store(err)
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found")
	}

	comment := &entity.Comment{
		Id:        uuid.New(),
		UserId:    userId,
		PostId:    postId,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := uow.CommentRepository().Create(ctx, comment); err != nil {
		return nil, apperror.Store(err)
	}

	author, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || author == nil {
		return nil, apperror.Store(err)
	}

	return &dto.CommentResponse{
		Id:      comment.Id,
		Content: comment.Content,
		User: dto.PostAuthorResponse{
			Id:    author.Id,
			Name:  author.FullName,
			Email: author.Email,
		},
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *postService) ListComments(ctx context.Context, postId uuid.UUID, limit, offset int) ([]dto.CommentResponse, error) {
	limit, offset = clampPage(limit, offset, commentPageDefault, commentPageMax)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: postId})
	if err != nil {
		return nil, apperror.Store(err)
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found")
	}

	comments, err := uow.CommentRepository().FindAllByPost(ctx, postId, limit, offset)
	if err != nil {
		return nil, apperror.Store(err)
	}

	responses := make([]dto.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = dto.CommentResponse{
			Id:      comment.Id,
			Content: comment.Content,
			User: dto.PostAuthorResponse{
				Id:    comment.UserId,
				Name:  comment.AuthorName,
				Email: comment.AuthorEmail,
			},
			CreatedAt: comment.CreatedAt,
		}
	}
	return responses, nil
}
