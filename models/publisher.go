package models

import (
	"time"

	"gorm.io/gorm"
)

// Publisher is a publishing house: one owner plus member editors and
// journalists. Membership is a permission scope, not ownership of content.
type Publisher struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Website     string         `json:"website"`
	OwnerID     uint           `json:"owner_id" gorm:"not null"`
	Owner       User           `json:"owner" gorm:"foreignKey:OwnerID"`
	Editors     []User         `json:"editors,omitempty" gorm:"many2many:publisher_editors;"`
	Journalists []User         `json:"journalists,omitempty" gorm:"many2many:publisher_journalists;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (p *Publisher) IsOwner(userID uint) bool { return p.OwnerID == userID }

// HasEditor requires Editors to be loaded.
func (p *Publisher) HasEditor(userID uint) bool {
	for i := range p.Editors {
		if p.Editors[i].ID == userID {
			return true
		}
	}
	return false
}

// HasJournalist requires Journalists to be loaded.
func (p *Publisher) HasJournalist(userID uint) bool {
	for i := range p.Journalists {
		if p.Journalists[i].ID == userID {
			return true
		}
	}
	return false
}
