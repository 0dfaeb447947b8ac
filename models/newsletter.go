package models

import (
	"time"

	"gorm.io/gorm"
)

// Newsletter has no workflow: creating one is its terminal visible state.
type Newsletter struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	AuthorID    uint           `json:"author_id" gorm:"not null"`
	Author      User           `json:"author" gorm:"foreignKey:AuthorID"`
	PublisherID *uint          `json:"publisher_id"`
	Publisher   *Publisher     `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	Title       string         `json:"title" gorm:"not null"`
	Content     string         `json:"content" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
