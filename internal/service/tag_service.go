package service

import (
	"context"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/apperr"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"
)

type ITagService interface {
	List(ctx context.Context) ([]*dto.TagResponse, error)
	Create(ctx context.Context, userId uint, req *dto.TagRequest) (*dto.TagResponse, error)
	Delete(ctx context.Context, userId uint, tagId uint) error
	GenerateDefaults(ctx context.Context, userId uint) ([]*dto.TagResponse, error)
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewTagService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ITagService {
	return &tagService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *tagService) List(ctx context.Context) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.TagResponse, len(tags))
	for i, tag := range tags {
		response[i] = toTagResponse(tag)
	}
	return response, nil
}

// Create requires an authenticated caller but not admin rights; the route
// enforces the token.
func (s *tagService) Create(ctx context.Context, userId uint, req *dto.TagRequest) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag := &entity.Tag{
		Name:  req.Name,
		Color: req.Color,
	}
	if err := uow.TagRepository().Create(ctx, tag); err != nil {
		return nil, err
	}

	s.log.Info("tag", "tag created", map[string]interface{}{"tag_id": tag.Id, "user_id": userId})
	return toTagResponse(tag), nil
}

// Delete is admin-only and destructive: every note carrying the tag is
// deleted outright, not just unlinked. One transaction covers the whole
// cascade.
func (s *tagService) Delete(ctx context.Context, userId uint, tagId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := requireAdmin(ctx, uow, userId); err != nil {
		return err
	}

	tag, err := uow.TagRepository().FindById(ctx, tagId)
	if err != nil {
		return err
	}
	if tag == nil {
		return apperr.NotFound("Tag not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	noteTags, err := uow.NoteTagRepository().FindAll(ctx, specification.ByTagID{TagID: tagId})
	if err != nil {
		return err
	}

	for _, noteTag := range noteTags {
		if err := uow.NoteTagRepository().DeleteWhere(ctx, specification.ByNoteID{NoteID: noteTag.NoteId}); err != nil {
			return err
		}
		if err := uow.NoteRepository().Delete(ctx, noteTag.NoteId); err != nil {
			return err
		}
	}

	if err := uow.TagRepository().Delete(ctx, tagId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Warn("tag", "tag deleted with note cascade", map[string]interface{}{
		"tag_id":        tagId,
		"deleted_notes": len(noteTags),
		"admin_id":      userId,
	})
	return nil
}

// GenerateDefaults seeds the starter catalog. Admin-only, and rejected
// unless the catalog is completely empty.
func (s *tagService) GenerateDefaults(ctx context.Context, userId uint) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := requireAdmin(ctx, uow, userId); err != nil {
		return nil, err
	}

	count, err := uow.TagRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("Tags are already generated")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	response := make([]*dto.TagResponse, 0, len(defaultTags))
	for _, seed := range defaultTags {
		tag := &entity.Tag{Name: seed.Name, Color: seed.Color}
		if err := uow.TagRepository().Create(ctx, tag); err != nil {
			return nil, err
		}
		response = append(response, toTagResponse(tag))
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("tag", "default tags generated", map[string]interface{}{"count": len(response)})
	return response, nil
}

func toTagResponse(tag *entity.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		Id:        tag.Id,
		Name:      tag.Name,
		Color:     tag.Color,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}
