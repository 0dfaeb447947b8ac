package models

import "time"

type PasswordResetToken struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	IsUsed    bool      `json:"is_used" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValid reports whether the token is still usable: never consumed and
// still inside the expiry window.
func (t *PasswordResetToken) IsValid(ttl time.Duration) bool {
	return !t.IsUsed && time.Since(t.CreatedAt) <= ttl
}
