package model

import "time"

type Note struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	UserId      uint      `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(255)"`
	Description *string   `gorm:"type:text"`
	IsArchive   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	// FK declaration only; rows are mapped without the association.
	User *User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
