package mapper

import (
	"notes-be/internal/entity"
	"notes-be/internal/model"
)

type TagMapper struct{}

func NewTagMapper() *TagMapper {
	return &TagMapper{}
}

func (m *TagMapper) ToEntity(t *model.Tag) *entity.Tag {
	if t == nil {
		return nil
	}
	return &entity.Tag{
		Id:        t.Id,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TagMapper) ToModel(t *entity.Tag) *model.Tag {
	if t == nil {
		return nil
	}
	return &model.Tag{
		Id:        t.Id,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TagMapper) ToEntities(tags []*model.Tag) []*entity.Tag {
	entities := make([]*entity.Tag, len(tags))
	for i, t := range tags {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

type NoteTagMapper struct{}

func NewNoteTagMapper() *NoteTagMapper {
	return &NoteTagMapper{}
}

func (m *NoteTagMapper) ToEntity(nt *model.NoteTag) *entity.NoteTag {
	if nt == nil {
		return nil
	}
	return &entity.NoteTag{
		Id:     nt.Id,
		NoteId: nt.NoteId,
		TagId:  nt.TagId,
	}
}

func (m *NoteTagMapper) ToModel(nt *entity.NoteTag) *model.NoteTag {
	if nt == nil {
		return nil
	}
	return &model.NoteTag{
		Id:     nt.Id,
		NoteId: nt.NoteId,
		TagId:  nt.TagId,
	}
}

func (m *NoteTagMapper) ToEntities(noteTags []*model.NoteTag) []*entity.NoteTag {
	entities := make([]*entity.NoteTag, len(noteTags))
	for i, nt := range noteTags {
		entities[i] = m.ToEntity(nt)
	}
	return entities
}
