package implementation

import (
	"context"

	"educonnect-be/internal/entity"
	"educonnect-be/internal/mapper"
	"educonnect-be/internal/model"
	"educonnect-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PostMapper
}

func NewLikeRepository(db *gorm.DB) contract.LikeRepository {
	return &LikeRepositoryImpl{
		db:     db,
		mapper: mapper.NewPostMapper(),
	}
}

func (r *LikeRepositoryImpl) Insert(ctx context.Context, like *entity.Like) (bool, error) {
	m := r.mapper.LikeToModel(like)
	// ON CONFLICT DO NOTHING against the (user_id, post_id) unique index:
	// concurrent double-likes collapse to a single row, RowsAffected tells
	// us which caller won.
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}).Create(m)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepositoryImpl) DeleteByUserAndPost(ctx context.Context, userId, postId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userId, postId).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepositoryImpl) CountByPost(ctx context.Context, postId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
