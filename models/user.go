package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleReader     Role = "reader"
	RoleJournalist Role = "journalist"
	RoleEditor     Role = "editor"
	RolePublisher  Role = "publisher"
	RoleStaff      Role = "staff"
)

// Valid reports whether r is one of the known roles. Roles are fixed at
// registration and never reassigned through the exposed operations.
func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleJournalist, RoleEditor, RolePublisher, RoleStaff:
		return true
	}
	return false
}

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Role      Role           `json:"role" gorm:"not null;default:'reader'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) IsReader() bool     { return u.Role == RoleReader }
func (u *User) IsJournalist() bool { return u.Role == RoleJournalist }
func (u *User) IsEditor() bool     { return u.Role == RoleEditor }
func (u *User) IsPublisher() bool  { return u.Role == RolePublisher }
func (u *User) IsStaff() bool      { return u.Role == RoleStaff }
