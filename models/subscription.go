package models

import "time"

// Subscription references exactly one of publisher or journalist, never
// both and never neither. The composite unique indexes make concurrent
// duplicate subscribes collapse into a single row at the database.
type Subscription struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	UserID       uint       `json:"user_id" gorm:"not null;index;uniqueIndex:idx_sub_user_publisher;uniqueIndex:idx_sub_user_journalist"`
	User         User       `json:"-" gorm:"foreignKey:UserID"`
	PublisherID  *uint      `json:"publisher_id" gorm:"uniqueIndex:idx_sub_user_publisher"`
	Publisher    *Publisher `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	JournalistID *uint      `json:"journalist_id" gorm:"uniqueIndex:idx_sub_user_journalist"`
	Journalist   *User      `json:"journalist,omitempty" gorm:"foreignKey:JournalistID"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (s *Subscription) HasExactlyOneTarget() bool {
	return (s.PublisherID != nil) != (s.JournalistID != nil)
}
