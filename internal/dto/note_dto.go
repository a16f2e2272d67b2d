package dto

import "time"

type CreateNoteRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	NoteTags    []uint  `json:"noteTags"`
}

type CreateNoteResponse struct {
	Ok     bool `json:"ok"`
	NoteId uint `json:"note_id"`
}

type UpdateNoteRequest struct {
	Id          uint   `json:"-"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Tags        []uint `json:"tags"`
}

// NoteTagResponse is the trimmed tag shape embedded in note views.
type NoteTagResponse struct {
	Id    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type NoteResponse struct {
	Id          uint              `json:"id"`
	UserId      uint              `json:"user_id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	IsArchive   bool              `json:"is_archive"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Tags        []NoteTagResponse `json:"tags"`
}
