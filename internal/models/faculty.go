package models

import (
	"time"
)

type Faculty struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	FirstName  string     `json:"first_name" gorm:"not null;size:50"`
	LastName   string     `json:"last_name" gorm:"not null;size:50"`
	Email      string     `json:"email" gorm:"uniqueIndex;not null;size:100"`
	Phone      *string    `json:"phone" gorm:"size:20"`
	Department *string    `json:"department" gorm:"size:100"`
	HireDate   *time.Time `json:"hire_date"`

	// Relations
	User User `json:"user" gorm:"foreignKey:UserID"`
}

func (Faculty) TableName() string {
	return "faculties"
}
