package models

import (
	"time"
)

type Course struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	CourseCode  string  `json:"course_code" gorm:"uniqueIndex;not null;size:20"`
	CourseName  string  `json:"course_name" gorm:"not null;size:100"`
	Description *string `json:"description" gorm:"type:text"`
	Credits     int     `json:"credits" gorm:"not null"`
	Department  *string `json:"department" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
}

func (Course) TableName() string {
	return "courses"
}
