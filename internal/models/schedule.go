package models

import (
	"gorm.io/datatypes"
)

// Canonical day names used by Schedule.DayOfWeek, Monday first.
var DaysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ValidDayOfWeek reports whether day is one of the seven canonical names.
func ValidDayOfWeek(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

type Schedule struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ClassID   uint           `json:"class_id" gorm:"not null;index"`
	DayOfWeek string         `json:"day_of_week" gorm:"not null;size:20"`
	StartTime datatypes.Time `json:"start_time" gorm:"not null"`
	EndTime   datatypes.Time `json:"end_time" gorm:"not null"`
	Room      string         `json:"room" gorm:"not null;size:50"`

	// Relations
	Class Class `json:"class" gorm:"foreignKey:ClassID"`
}

func (Schedule) TableName() string {
	return "schedules"
}
