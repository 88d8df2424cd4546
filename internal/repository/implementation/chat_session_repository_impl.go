package implementation

import (
	"context"
	"errors"
	"time"

	"educonnect-be/internal/entity"
	"educonnect-be/internal/mapper"
	"educonnect-be/internal/model"
	"educonnect-be/internal/repository/contract"
	"educonnect-be/internal/repository/scope"
	"educonnect-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m, err := r.mapper.ChatSessionToModel(session)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ChatSessionToEntity(m)
	if err != nil {
		return err
	}
	*session = *saved
	return nil
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	var m model.ChatSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatSessionToEntity(&m)
}

func (r *ChatSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var models []*model.ChatSession
	// Most recently touched first unless a spec overrides the ordering.
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByUpdatedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatSession, len(models))
	for i, m := range models {
		e, err := r.mapper.ChatSessionToEntity(m)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}

func (r *ChatSessionRepositoryImpl) ReplaceTranscript(ctx context.Context, id, userId uuid.UUID, title string, messages []entity.ChatMessage) (*entity.ChatSession, error) {
	raw, err := r.mapper.MessagesToJSON(messages)
	if err != nil {
		return nil, err
	}

	// Single conditional UPDATE scoped to (id, owner): the ownership check
	// and the write are one statement, so there is no check-then-act window.
	result := r.db.WithContext(ctx).Model(&model.ChatSession{}).
		Where("id = ? AND user_id = ?", id, userId).
		Updates(map[string]interface{}{
			"title":      title,
			"messages":   raw,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *ChatSessionRepositoryImpl) Deactivate(ctx context.Context, id, userId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.ChatSession{}).
		Where("id = ? AND user_id = ?", id, userId).
		Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ChatSessionRepositoryImpl) DeactivateAllByUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ChatSession{}).
		Where("user_id = ? AND is_active = ?", userId, true).
		Update("is_active", false).Error
}

func (r *ChatSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
