package validator

import (
	"testing"
)

func TestValidator_LoginRequest(t *testing.T) {
	v := New()

	if err := v.Validate(&LoginRequest{Username: "admin", Password: "secret"}); err != nil {
		t.Errorf("Expected valid login request, got %v", err)
	}

	err := v.Validate(&LoginRequest{Username: "", Password: ""})
	if err == nil {
		t.Fatal("Expected validation failure for empty login request")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("Expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Errorf("Expected 2 field errors, got %d", len(verrs))
	}
}

func TestValidator_DomainRules(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     interface{}
		wantErr bool
	}{
		{
			name: "valid class",
			req: &ClassCreateRequest{
				ClassName: "CS101-A", CourseID: 1, FacultyID: 2,
				Semester: "Fall", Year: 2026,
			},
			wantErr: false,
		},
		{
			name: "bad semester",
			req: &ClassCreateRequest{
				ClassName: "CS101-A", CourseID: 1, FacultyID: 2,
				Semester: "Autumn", Year: 2026,
			},
			wantErr: true,
		},
		{
			name: "bad role",
			req: &UserCreateRequest{
				Username: "newuser", Password: "longenough", Role: "Superuser",
			},
			wantErr: true,
		},
		{
			name: "bad gender",
			req: &StudentCreateRequest{
				Username: "student1", Password: "longenough",
				FirstName: "Ana", LastName: "Silva",
				Email: "ana@example.edu", Gender: strPtr("X"),
			},
			wantErr: true,
		},
		{
			name: "bad enrollment status",
			req:     &EnrollmentStatusRequest{Status: "Paused"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_ScheduleTimes(t *testing.T) {
	v := New()

	base := ScheduleCreateRequest{
		ClassID: 1, DayOfWeek: "Monday", Room: "B204",
	}

	valid := base
	valid.StartTime, valid.EndTime = "07:15", "09:15"
	if err := v.Validate(valid); err != nil {
		t.Errorf("Expected valid schedule, got %v", err)
	}

	inverted := base
	inverted.StartTime, inverted.EndTime = "14:00", "12:00"
	if err := v.Validate(inverted); err == nil {
		t.Error("Expected failure when start time is after end time")
	}

	equal := base
	equal.StartTime, equal.EndTime = "12:00", "12:00"
	if err := v.Validate(equal); err == nil {
		t.Error("Expected failure when start time equals end time")
	}

	malformed := base
	malformed.StartTime, malformed.EndTime = "7am", "9am"
	if err := v.Validate(malformed); err == nil {
		t.Error("Expected failure for non HH:MM times")
	}

	badDay := base
	badDay.DayOfWeek = "Funday"
	badDay.StartTime, badDay.EndTime = "07:15", "09:15"
	if err := v.Validate(badDay); err == nil {
		t.Error("Expected failure for unknown day name")
	}
}

func strPtr(s string) *string { return &s }
