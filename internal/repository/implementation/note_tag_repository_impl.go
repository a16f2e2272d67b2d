package implementation

import (
	"context"

	"notes-be/internal/entity"
	"notes-be/internal/mapper"
	"notes-be/internal/model"
	"notes-be/internal/repository/contract"
	"notes-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NoteTagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteTagMapper
}

func NewNoteTagRepository(db *gorm.DB) contract.NoteTagRepository {
	return &NoteTagRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteTagMapper(),
	}
}

func (r *NoteTagRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteTagRepositoryImpl) Create(ctx context.Context, noteTag *entity.NoteTag) error {
	m := r.mapper.ToModel(noteTag)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*noteTag = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteTagRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.NoteTag{}, id).Error
}

func (r *NoteTagRepositoryImpl) DeleteWhere(ctx context.Context, specs ...specification.Specification) error {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	return query.Delete(&model.NoteTag{}).Error
}

func (r *NoteTagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteTag, error) {
	var models []*model.NoteTag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteTagRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NoteTag{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
