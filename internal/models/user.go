package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleStudent UserRole = "Student"
	RoleFaculty UserRole = "Faculty"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleFaculty:
		return true
	}
	return false
}

type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Username     string   `json:"username" gorm:"uniqueIndex;not null;size:100"`
	PasswordHash string   `json:"-" gorm:"not null;size:255"`
	Role         UserRole `json:"role" gorm:"not null;size:20;default:Student"`

	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
