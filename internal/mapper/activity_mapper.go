package mapper

import (
	"educonnect-be/internal/entity"
	"educonnect-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.ActivityLog) *entity.ActivityLog {
	if a == nil {
		return nil
	}
	return &entity.ActivityLog{
		Id:        a.Id,
		Event:     a.Event,
		ActorId:   a.ActorId,
		SubjectId: a.SubjectId,
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.ActivityLog) *model.ActivityLog {
	if a == nil {
		return nil
	}
	return &model.ActivityLog{
		Id:        a.Id,
		Event:     a.Event,
		ActorId:   a.ActorId,
		SubjectId: a.SubjectId,
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}
}
