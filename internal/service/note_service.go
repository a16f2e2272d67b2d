package service

import (
	"context"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/apperr"
	"notes-be/internal/pkg/exporter"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/database"
)

type INoteService interface {
	ListActive(ctx context.Context, userId uint) ([]*dto.NoteResponse, error)
	ListArchived(ctx context.Context, userId uint) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, id uint) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uint, id uint) error
	SetArchive(ctx context.Context, userId uint, id uint, archived bool) error
	Export(ctx context.Context, userId uint) ([]byte, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *noteService) ListActive(ctx context.Context, userId uint) ([]*dto.NoteResponse, error) {
	return s.listByArchiveState(ctx, userId, false)
}

func (s *noteService) ListArchived(ctx context.Context, userId uint) ([]*dto.NoteResponse, error) {
	return s.listByArchiveState(ctx, userId, true)
}

func (s *noteService) listByArchiveState(ctx context.Context, userId uint, archived bool) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.Archived{IsArchive: archived},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return s.expandTags(ctx, uow, notes)
}

// Show fetches a note by id. There is no ownership check; the read
// endpoint is open while all mutations require the owner.
func (s *noteService) Show(ctx context.Context, id uint) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperr.NotFound("Note not found")
	}

	views, err := s.expandTags(ctx, uow, []*entity.Note{note})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *noteService) Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Note plus associations commit together: a dangling tag id rolls back
	// the whole creation instead of leaving a half-tagged note.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	note := &entity.Note{
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	for _, tagId := range req.NoteTags {
		noteTag := &entity.NoteTag{NoteId: note.Id, TagId: tagId}
		if err := uow.NoteTagRepository().Create(ctx, noteTag); err != nil {
			if database.IsForeignKeyViolation(err) {
				return nil, apperr.BadRequest("Unknown tag id")
			}
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("note", "note created", map[string]interface{}{"note_id": note.Id, "user_id": userId})
	return &dto.CreateNoteResponse{Ok: true, NoteId: note.Id}, nil
}

func (s *noteService) Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperr.NotFound("Note not found")
	}
	if err := requireOwner(note.UserId, userId); err != nil {
		return nil, err
	}

	// Full tag-set replacement and the field update are one transaction, so
	// no partial tag set is ever observable.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	note.Title = req.Title
	note.Description = &req.Description
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	if err := uow.NoteTagRepository().DeleteWhere(ctx, specification.ByNoteID{NoteID: note.Id}); err != nil {
		return nil, err
	}
	for _, tagId := range req.Tags {
		noteTag := &entity.NoteTag{NoteId: note.Id, TagId: tagId}
		if err := uow.NoteTagRepository().Create(ctx, noteTag); err != nil {
			if database.IsForeignKeyViolation(err) {
				return nil, apperr.BadRequest("Unknown tag id")
			}
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return s.Show(ctx, note.Id)
}

func (s *noteService) Delete(ctx context.Context, userId uint, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if note == nil {
		return apperr.NotFound("Note not found")
	}
	if err := requireOwner(note.UserId, userId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteTagRepository().DeleteWhere(ctx, specification.ByNoteID{NoteID: id}); err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *noteService) SetArchive(ctx context.Context, userId uint, id uint, archived bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if note == nil {
		return apperr.NotFound("Note not found")
	}
	if err := requireOwner(note.UserId, userId); err != nil {
		return err
	}

	note.IsArchive = archived
	return uow.NoteRepository().Update(ctx, note)
}

// Export renders the caller's active notes as an xlsx workbook.
func (s *noteService) Export(ctx context.Context, userId uint) ([]byte, error) {
	notes, err := s.ListActive(ctx, userId)
	if err != nil {
		return nil, err
	}
	return exporter.BuildNotesWorkbook(notes)
}

// expandTags attaches the {id, name, color} tag view to each note.
func (s *noteService) expandTags(ctx context.Context, uow unitofwork.UnitOfWork, notes []*entity.Note) ([]*dto.NoteResponse, error) {
	noteIds := make([]uint, len(notes))
	for i, note := range notes {
		noteIds[i] = note.Id
	}

	tagsByNote := make(map[uint][]dto.NoteTagResponse, len(notes))
	if len(noteIds) > 0 {
		noteTags, err := uow.NoteTagRepository().FindAll(ctx, specification.ByNoteIDs{NoteIDs: noteIds})
		if err != nil {
			return nil, err
		}

		if len(noteTags) > 0 {
			tagIds := make([]uint, 0, len(noteTags))
			seen := make(map[uint]bool)
			for _, noteTag := range noteTags {
				if !seen[noteTag.TagId] {
					tagIds = append(tagIds, noteTag.TagId)
					seen[noteTag.TagId] = true
				}
			}

			tags, err := uow.TagRepository().FindAll(ctx, specification.ByIDs{IDs: tagIds})
			if err != nil {
				return nil, err
			}
			tagById := make(map[uint]*entity.Tag, len(tags))
			for _, tag := range tags {
				tagById[tag.Id] = tag
			}

			for _, noteTag := range noteTags {
				tag, ok := tagById[noteTag.TagId]
				if !ok {
					continue
				}
				tagsByNote[noteTag.NoteId] = append(tagsByNote[noteTag.NoteId], dto.NoteTagResponse{
					Id:    tag.Id,
					Name:  tag.Name,
					Color: tag.Color,
				})
			}
		}
	}

	response := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		tags := tagsByNote[note.Id]
		if tags == nil {
			tags = []dto.NoteTagResponse{}
		}
		response[i] = &dto.NoteResponse{
			Id:          note.Id,
			UserId:      note.UserId,
			Title:       note.Title,
			Description: note.Description,
			IsArchive:   note.IsArchive,
			CreatedAt:   note.CreatedAt,
			UpdatedAt:   note.UpdatedAt,
			Tags:        tags,
		}
	}
	return response, nil
}
