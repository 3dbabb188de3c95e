package models

type Class struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ClassName string `json:"class_name" gorm:"not null;size:100"`
	CourseID  uint   `json:"course_id" gorm:"not null;index"`
	FacultyID uint   `json:"faculty_id" gorm:"not null;index"`
	Semester  string `json:"semester" gorm:"not null;size:20"`
	Year      int    `json:"year" gorm:"not null"`

	// Relations
	Course  Course  `json:"course" gorm:"foreignKey:CourseID"`
	Faculty Faculty `json:"faculty" gorm:"foreignKey:FacultyID"`
}

func (Class) TableName() string {
	return "classes"
}
