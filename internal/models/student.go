package models

import (
	"time"
)

type Student struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	UserID         uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	FirstName      string     `json:"first_name" gorm:"not null;size:50"`
	LastName       string     `json:"last_name" gorm:"not null;size:50"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Gender         *string    `json:"gender" gorm:"size:10"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:100"`
	Phone          *string    `json:"phone" gorm:"size:20"`
	Address        *string    `json:"address" gorm:"size:255"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
	Program        *string    `json:"program" gorm:"size:100"`

	// Relations
	User User `json:"user" gorm:"foreignKey:UserID"`
}

func (Student) TableName() string {
	return "students"
}
