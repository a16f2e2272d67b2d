package model

import "time"

type Tag struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Color     string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Tag) TableName() string {
	return "tags"
}

type NoteTag struct {
	Id     uint `gorm:"primaryKey;autoIncrement"`
	NoteId uint `gorm:"not null;index"`
	TagId  uint `gorm:"not null;index"`

	Note *Note `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
	Tag  *Tag  `gorm:"foreignKey:TagId;constraint:OnDelete:CASCADE"`
}

func (NoteTag) TableName() string {
	return "notes_tags"
}
