package specification

import "gorm.io/gorm"

type OwnedBy struct {
	UserID uint
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type Archived struct {
	IsArchive bool
}

func (s Archived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_archive = ?", s.IsArchive)
}

type ByNoteID struct {
	NoteID uint
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

type ByNoteIDs struct {
	NoteIDs []uint
}

func (s ByNoteIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id IN ?", s.NoteIDs)
}

type ByTagID struct {
	TagID uint
}

func (s ByTagID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tag_id = ?", s.TagID)
}
