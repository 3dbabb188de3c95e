package models

import (
	"time"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "Active"
	EnrollmentDropped   EnrollmentStatus = "Dropped"
	EnrollmentCompleted EnrollmentStatus = "Completed"
)

// StudentClassEnrollment links a student to a class. A (student, class)
// pair may accumulate historical rows; only the Active one counts as a
// live enrollment.
type StudentClassEnrollment struct {
	ID             uint             `json:"id" gorm:"primaryKey"`
	StudentID      uint             `json:"student_id" gorm:"not null;index"`
	ClassID        uint             `json:"class_id" gorm:"not null;index"`
	EnrollmentDate time.Time        `json:"enrollment_date"`
	Status         EnrollmentStatus `json:"status" gorm:"not null;size:20;default:Active"`

	// Relations
	Student Student `json:"student" gorm:"foreignKey:StudentID"`
	Class   Class   `json:"class" gorm:"foreignKey:ClassID"`
}

func (StudentClassEnrollment) TableName() string {
	return "student_class_enrollments"
}
