package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/SAP-F-2025/sims-service/internal/models"
)

// ValidationError describes a single failed rule on a request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToValidationErrors converts go-playground field errors into the wire
// representation.
func ToValidationErrors(err error) ValidationErrors {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "request", Message: err.Error(), Rule: "struct"}}
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "day_of_week":
		return "must be a day name, Monday through Sunday"
	case "gender":
		return "must be Male, Female or Other"
	case "role":
		return "must be Admin, Student or Faculty"
	case "semester":
		return "must be Spring, Summer, Fall or Winter"
	case "time_hhmm":
		return "must be a time of day in HH:MM form"
	case "time_order":
		return "start time must be before end time"
	default:
		return fmt.Sprintf("failed rule %s", fe.Tag())
	}
}

// Validator wraps go-playground validation with the domain rule set.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerDomainRules()

	return v
}

// Validate runs struct validation; a non-nil result is ValidationErrors.
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (v *Validator) registerDomainRules() {
	v.validate.RegisterValidation("day_of_week", func(fl validator.FieldLevel) bool {
		return models.ValidDayOfWeek(fl.Field().String())
	})

	v.validate.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "Male", "Female", "Other":
			return true
		}
		return false
	})

	v.validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.ValidRole(models.UserRole(fl.Field().String()))
	})

	v.validate.RegisterValidation("semester", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "Spring", "Summer", "Fall", "Winter":
			return true
		}
		return false
	})

	v.validate.RegisterValidation("time_hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil
	})

	v.validate.RegisterStructValidation(v.validateScheduleTimes, ScheduleCreateRequest{}, ScheduleUpdateRequest{})
}

// validateScheduleTimes enforces start < end once both fields parse.
func (v *Validator) validateScheduleTimes(sl validator.StructLevel) {
	var startRaw, endRaw string
	switch req := sl.Current().Interface().(type) {
	case ScheduleCreateRequest:
		startRaw, endRaw = req.StartTime, req.EndTime
	case ScheduleUpdateRequest:
		startRaw, endRaw = req.StartTime, req.EndTime
	default:
		return
	}

	start, err1 := time.Parse("15:04", startRaw)
	end, err2 := time.Parse("15:04", endRaw)
	if err1 != nil || err2 != nil {
		return
	}
	if !start.Before(end) {
		sl.ReportError(startRaw, "StartTime", "StartTime", "time_order", "")
	}
}
