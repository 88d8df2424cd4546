package mapper

import (
	"educonnect-be/internal/entity"
	"educonnect-be/internal/model"
)

type PostMapper struct{}

func NewPostMapper() *PostMapper {
	return &PostMapper{}
}

func (m *PostMapper) PostToEntity(p *model.Post) *entity.Post {
	if p == nil {
		return nil
	}
	return &entity.Post{
		Id:          p.Id,
		UserId:      p.UserId,
		Description: p.Description,
		Link:        p.Link,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PostMapper) PostToModel(p *entity.Post) *model.Post {
	if p == nil {
		return nil
	}
	return &model.Post{
		Id:          p.Id,
		UserId:      p.UserId,
		Description: p.Description,
		Link:        p.Link,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PostMapper) LikeToModel(l *entity.Like) *model.Like {
	if l == nil {
		return nil
	}
	return &model.Like{
		Id:        l.Id,
		UserId:    l.UserId,
		PostId:    l.PostId,
		CreatedAt: l.CreatedAt,
	}
}

func (m *PostMapper) CommentToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:        c.Id,
		UserId:    c.UserId,
		PostId:    c.PostId,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (m *PostMapper) CommentToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	return &model.Comment{
		Id:        c.Id,
		UserId:    c.UserId,
		PostId:    c.PostId,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
