package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPending   ArticleStatus = "pending"
	StatusPublished ArticleStatus = "published"
	StatusRejected  ArticleStatus = "rejected"
)

// Terminal reports whether no further workflow transition is possible.
func (s ArticleStatus) Terminal() bool {
	return s == StatusPublished || s == StatusRejected
}

type Article struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	AuthorID     uint           `json:"author_id" gorm:"not null"`
	Author       User           `json:"author" gorm:"foreignKey:AuthorID"`
	PublisherID  *uint          `json:"publisher_id"`
	Publisher    *Publisher     `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	CategoryID   *uint          `json:"category_id"`
	Category     *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title        string         `json:"title" gorm:"not null"`
	Summary      string         `json:"summary" gorm:"type:text"`
	Content      string         `json:"content" gorm:"type:text"`
	Status       ArticleStatus  `json:"status" gorm:"not null;default:'draft'"`
	ApprovedByID *uint          `json:"approved_by_id"`
	ApprovedBy   *User          `json:"approved_by,omitempty" gorm:"foreignKey:ApprovedByID"`
	ApprovedAt   *time.Time     `json:"approved_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// IsApproved is derived from status; there is no separately settable flag.
func (a *Article) IsApproved() bool { return a.Status == StatusPublished }
