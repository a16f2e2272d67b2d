package contract

import (
	"context"

	"notes-be/internal/entity"
	"notes-be/internal/repository/specification"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	Update(ctx context.Context, tag *entity.Tag) error
	Delete(ctx context.Context, id uint) error
	FindById(ctx context.Context, id uint) (*entity.Tag, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type NoteTagRepository interface {
	Create(ctx context.Context, noteTag *entity.NoteTag) error
	Delete(ctx context.Context, id uint) error
	// DeleteWhere removes every association matching the specs in one statement.
	DeleteWhere(ctx context.Context, specs ...specification.Specification) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteTag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
