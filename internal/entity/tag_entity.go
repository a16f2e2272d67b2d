package entity

import "time"

type Tag struct {
	Id        uint
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteTag is the join record linking one Note to one Tag.
type NoteTag struct {
	Id     uint
	NoteId uint
	TagId  uint
}
