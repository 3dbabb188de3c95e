package events

import (
	"context"
	"time"
)

// ===== EVENT TYPES =====

const (
	StudentCreated = "student.created"
	StudentUpdated = "student.updated"
	StudentDeleted = "student.deleted"

	FacultyCreated = "faculty.created"
	FacultyUpdated = "faculty.updated"
	FacultyDeleted = "faculty.deleted"

	CourseCreated = "course.created"
	CourseUpdated = "course.updated"
	CourseDeleted = "course.deleted"

	ClassCreated = "class.created"
	ClassUpdated = "class.updated"
	ClassDeleted = "class.deleted"

	StudentEnrolled         = "enrollment.created"
	EnrollmentRemoved       = "enrollment.removed"
	EnrollmentStatusChanged = "enrollment.status_changed"

	ScheduleCreated = "schedule.created"
	ScheduleUpdated = "schedule.updated"
	ScheduleDeleted = "schedule.deleted"
)

// EventSource identifies this service as the event origin.
const EventSource = "sims-service"

// Event is the envelope published for every domain lifecycle change.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// EventPublisher publishes domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
	Close() error
}
