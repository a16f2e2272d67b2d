package entity

import "time"

type Note struct {
	Id          uint
	UserId      uint
	Title       string
	Description *string
	IsArchive   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
