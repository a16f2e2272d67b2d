package service

import (
	"bytes"
	"context"
	"testing"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNoteCreateAndShow(t *testing.T) {
	factory := newTestFactory(t)
	noteSvc := NewNoteService(factory, nopLogger{})
	tagSvc := NewTagService(factory, nopLogger{})
	ctx := context.Background()
	userId := seedUser(t, factory, "owner@example.com", false)

	tag, err := tagSvc.Create(ctx, userId, &dto.TagRequest{Name: "Работа", Color: "#FF5733"})
	require.NoError(t, err)

	desc := "details"
	created, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:       "First note",
		Description: &desc,
		NoteTags:    []uint{tag.Id},
	})
	require.NoError(t, err)
	assert.True(t, created.Ok)
	require.NotZero(t, created.NoteId)

	note, err := noteSvc.Show(ctx, created.NoteId)
	require.NoError(t, err)
	assert.Equal(t, "First note", note.Title)
	require.NotNil(t, note.Description)
	assert.Equal(t, "details", *note.Description)
	assert.Equal(t, userId, note.UserId)
	assert.False(t, note.IsArchive)
	require.Len(t, note.Tags, 1)
	assert.Equal(t, "Работа", note.Tags[0].Name)
	assert.Equal(t, "#FF5733", note.Tags[0].Color)
}

func TestNoteCreateUnknownTag(t *testing.T) {
	factory := newTestFactory(t)
	noteSvc := NewNoteService(factory, nopLogger{})
	ctx := context.Background()
	userId := seedUser(t, factory, "owner@example.com", false)

	_, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:    "dangling",
		NoteTags: []uint{9999},
	})
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))

	// The rollback leaves no orphan note behind.
	notes, err := noteSvc.ListActive(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteUpdateReplacesTags(t *testing.T) {
	factory := newTestFactory(t)
	noteSvc := NewNoteService(factory, nopLogger{})
	tagSvc := NewTagService(factory, nopLogger{})
	ctx := context.Background()
	userId := seedUser(t, factory, "owner@example.com", false)

	var tagIds []uint
	for _, name := range []string{"one", "two", "three"} {
		tag, err := tagSvc.Create(ctx, userId, &dto.TagRequest{Name: name, Color: "#000000"})
		require.NoError(t, err)
		tagIds = append(tagIds, tag.Id)
	}

	created, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:    "before",
		NoteTags: []uint{tagIds[0], tagIds[1]},
	})
	require.NoError(t, err)

	updated, err := noteSvc.Update(ctx, userId, &dto.UpdateNoteRequest{
		Id:          created.NoteId,
		Title:       "after",
		Description: "rewritten",
		Tags:        []uint{tagIds[2]},
	})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "rewritten", *updated.Description)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, tagIds[2], updated.Tags[0].Id)
}

func TestNoteUpdateUnknownTagRollsBack(t *testing.T) {
	factory := newTestFactory(t)
	noteSvc := NewNoteService(factory, nopLogger{})
	tagSvc := NewTagService(factory, nopLogger{})
	ctx := context.Background()
	userId := seedUser(t, factory, "owner@example.com", false)

	tag, err := tagSvc.Create(ctx, userId, &dto.TagRequest{Name: "keep", Color: "#123456"})
	require.NoError(t, err)
	created, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "orig", NoteTags: []uint{tag.Id}})
	require.NoError(t, err)

	_, err = noteSvc.Update(ctx, userId, &dto.UpdateNoteRequest{
		Id:    created.NoteId,
		Title: "broken",
		Tags:  []uint{9999},
	})
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))

	// Title and tag set are both untouched.
	note, err := noteSvc.Show(ctx, created.NoteId)
	require.NoError(t, err)
	assert.Equal(t, "orig", note.Title)
	require.Len(t, note.Tags, 1)
	assert.Equal(t, tag.Id, note.Tags[0].Id)
}

func TestNoteOwnership(t *testing.T) {
	factory := newTestFactory(t)
	noteSvc := NewNoteService(factory, nopLogger{})
	ctx := context.Background()
	ownerId := seedUser(t, factory, "owner@example.com", false)
	strangerId := seedUser(t, factory, "stranger@example.com", false)

	created, err := noteSvc.Create(ctx, ownerId, &dto.CreateNoteRequest{Title: "private"})
	require.NoError(t, err)

	t.Run("Update", func(t *testing.T) {
		_, err := noteSvc.Update(ctx, strangerId, &dto.UpdateNoteRequest{Id: created.NoteId, Title: "hijacked"})
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	t.Run("Delete", func(t *testing.T) {
		err := noteSvc.Delete(ctx, strangerId, created.NoteId)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	t.Run("Archive", func(t *testing.T) {
		err := noteSvc.SetArchive(ctx, strangerId, created.NoteId, true)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	})

	// Nothing changed.
	note, err := noteSvc.Show(ctx, created.NoteId)
	require.NoError(t, err)
	assert.Equal(t, "private", note.Title)
	assert.False(t, note.IsArchive)
}

func TestNoteArchivePartition(t *testing.T) {
	factory := newTestFactory(t)
	noteSvc := NewNoteService(factory, nopLogger{})
	ctx := context.Background()
	userId := seedUser(t, factory, "owner@example.com", false)

	active, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "stays active"})
	require.NoError(t, err)
	archived, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "goes away"})
	require.NoError(t, err)

	require.NoError(t, noteSvc.SetArchive(ctx, userId, archived.NoteId, true))

	activeNotes, err := noteSvc.ListActive(ctx, userId)
	require.NoError(t, err)
	require.Len(t, activeNotes, 1)
	assert.Equal(t, active.NoteId, activeNotes[0].Id)

	archivedNotes, err := noteSvc.ListArchived(ctx, userId)
	require.NoError(t, err)
	require.Len(t, archivedNotes, 1)
	assert.Equal(t, archived.NoteId, archivedNotes[0].Id)

	// Unarchiving moves it back.
	require.NoError(t, noteSvc.SetArchive(ctx, userId, archived.NoteId, false))
	activeNotes, err = noteSvc.ListActive(ctx, userId)
	require.NoError(t, err)
	assert.Len(t, activeNotes, 2)
}

func TestNoteDelete(t *testing.T) {
	factory := newTestFactory(t)
	noteSvc := NewNoteService(factory, nopLogger{})
	tagSvc := NewTagService(factory, nopLogger{})
	ctx := context.Background()
	userId := seedUser(t, factory, "owner@example.com", false)

	tag, err := tagSvc.Create(ctx, userId, &dto.TagRequest{Name: "linked", Color: "#abcdef"})
	require.NoError(t, err)
	created, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "doomed", NoteTags: []uint{tag.Id}})
	require.NoError(t, err)

	require.NoError(t, noteSvc.Delete(ctx, userId, created.NoteId))

	_, err = noteSvc.Show(ctx, created.NoteId)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// The tag itself is untouched.
	tags, err := tagSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestNoteShowNotFound(t *testing.T) {
	factory := newTestFactory(t)
	noteSvc := NewNoteService(factory, nopLogger{})

	_, err := noteSvc.Show(context.Background(), 404)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestNoteExport(t *testing.T) {
	factory := newTestFactory(t)
	noteSvc := NewNoteService(factory, nopLogger{})
	ctx := context.Background()
	userId := seedUser(t, factory, "owner@example.com", false)

	_, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "exported"})
	require.NoError(t, err)
	archived, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "hidden"})
	require.NoError(t, err)
	require.NoError(t, noteSvc.SetArchive(ctx, userId, archived.NoteId, true))

	data, err := noteSvc.Export(ctx, userId)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Мои заметки")
	require.NoError(t, err)
	// Header plus the single active note; the archived one is excluded.
	require.Len(t, rows, 2)
	assert.Equal(t, "exported", rows[1][1])
}
