package implementation

import (
	"context"
	"time"

	"educonnect-be/internal/entity"
	"educonnect-be/internal/mapper"
	"educonnect-be/internal/model"
	"educonnect-be/internal/repository/contract"
	"educonnect-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PostMapper
}

func NewCommentRepository(db *gorm.DB) contract.CommentRepository {
	return &CommentRepositoryImpl{
		db:     db,
		mapper: mapper.NewPostMapper(),
	}
}

func (r *CommentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *entity.Comment) error {
	m := r.mapper.CommentToModel(comment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	saved := r.mapper.CommentToEntity(m)
	saved.AuthorName = comment.AuthorName
	saved.AuthorEmail = comment.AuthorEmail
	*comment = *saved
	return nil
}

type commentRow struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	PostId      uuid.UUID
	Content     string
	CreatedAt   time.Time
	AuthorName  string
	AuthorEmail string
}

func (r *CommentRepositoryImpl) FindAllByPost(ctx context.Context, postId uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	var rows []commentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id, c.user_id, c.post_id, c.content, c.created_at,
		       u.full_name AS author_name, u.email AS author_email
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ?
		ORDER BY c.created_at DESC
		LIMIT ? OFFSET ?`,
		postId, limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(rows))
	for i, row := range rows {
		comments[i] = &entity.Comment{
			Id:          row.Id,
			UserId:      row.UserId,
			PostId:      row.PostId,
			Content:     row.Content,
			CreatedAt:   row.CreatedAt,
			AuthorName:  row.AuthorName,
			AuthorEmail: row.AuthorEmail,
		}
	}
	return comments, nil
}

func (r *CommentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Comment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
