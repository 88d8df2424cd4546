package implementation

import (
	"context"
	"errors"
	"time"

	"educonnect-be/internal/entity"
	"educonnect-be/internal/mapper"
	"educonnect-be/internal/model"
	"educonnect-be/internal/repository/contract"
	"educonnect-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PostMapper
}

func NewPostRepository(db *gorm.DB) contract.PostRepository {
	return &PostRepositoryImpl{
		db:     db,
		mapper: mapper.NewPostMapper(),
	}
}

func (r *PostRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *entity.Post) error {
	m := r.mapper.PostToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.PostToEntity(m)
	return nil
}

func (r *PostRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Post, error) {
	var m model.Post
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PostToEntity(&m), nil
}

// postStatsRow is the scan target for the annotated feed query.
type postStatsRow struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Description *string
	Link        *string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AuthorName  string
	AuthorEmail string
	LikeCount   int64
	ViewerLiked bool
}

func (r *PostRepositoryImpl) FindAllWithStats(ctx context.Context, viewerId uuid.UUID, limit, offset int) ([]*entity.PostWithStats, error) {
	// Counts and the viewer's like state come back with the posts in one
	// statement instead of two extra queries per post.
	var rows []postStatsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id, p.user_id, p.description, p.link, p.image_url,
		       p.created_at, p.updated_at,
		       u.full_name AS author_name, u.email AS author_email,
		       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
		       EXISTS(SELECT 1 FROM likes l WHERE l.post_id = p.id AND l.user_id = ?) AS viewer_liked
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
		LIMIT ? OFFSET ?`,
		viewerId, limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.PostWithStats, len(rows))
	for i, row := range rows {
		posts[i] = &entity.PostWithStats{
			Post: entity.Post{
				Id:          row.Id,
				UserId:      row.UserId,
				Description: row.Description,
				Link:        row.Link,
				ImageURL:    row.ImageURL,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
			AuthorName:  row.AuthorName,
			AuthorEmail: row.AuthorEmail,
			LikeCount:   row.LikeCount,
			ViewerLiked: row.ViewerLiked,
		}
	}
	return posts, nil
}

func (r *PostRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Post{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
