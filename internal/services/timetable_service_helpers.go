package services

import (
	"time"

	"gorm.io/datatypes"

	"github.com/SAP-F-2025/sims-service/internal/models"
)

// ===== TIMETABLE GRID =====

// TimeSlot is one fixed teaching block of the school day.
type TimeSlot struct {
	Label string         `json:"label"`
	Start datatypes.Time `json:"start"`
	End   datatypes.Time `json:"end"`
}

// The five teaching blocks every school day is divided into.
var timeSlots = []TimeSlot{
	{Label: "Time slot 1 (7:15-9:15)", Start: datatypes.NewTime(7, 15, 0, 0), End: datatypes.NewTime(9, 15, 0, 0)},
	{Label: "Time slot 2 (9:25-11:25)", Start: datatypes.NewTime(9, 25, 0, 0), End: datatypes.NewTime(11, 25, 0, 0)},
	{Label: "Time slot 3 (12:00-14:00)", Start: datatypes.NewTime(12, 0, 0, 0), End: datatypes.NewTime(14, 0, 0, 0)},
	{Label: "Time slot 4 (14:10-16:10)", Start: datatypes.NewTime(14, 10, 0, 0), End: datatypes.NewTime(16, 10, 0, 0)},
	{Label: "Time slot 5 (16:20-18:20)", Start: datatypes.NewTime(16, 20, 0, 0), End: datatypes.NewTime(18, 20, 0, 0)},
}

// TimeSlots returns the fixed teaching blocks, earliest first.
func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// TimetableGrid is the weekly timetable laid out as slot rows and day
// columns. Cells[slot][day] is nil when nothing is scheduled there.
type TimetableGrid struct {
	Days  []string                   `json:"days"`
	Slots []TimeSlot                 `json:"slots"`
	Cells [][]*models.TimetableEntry `json:"cells"`
}

// BuildTimetableGrid places schedule entries into the fixed grid. An
// entry lands in the first slot that fully contains its time range;
// entries outside every slot or with an unknown day name are dropped.
// When two entries land in the same cell the later one in input order
// wins.
func BuildTimetableGrid(entries []models.TimetableEntry) *TimetableGrid {
	grid := &TimetableGrid{
		Days:  models.DaysOfWeek,
		Slots: TimeSlots(),
		Cells: make([][]*models.TimetableEntry, len(timeSlots)),
	}
	for i := range grid.Cells {
		grid.Cells[i] = make([]*models.TimetableEntry, len(models.DaysOfWeek))
	}

	dayIndex := make(map[string]int, len(models.DaysOfWeek))
	for i, day := range models.DaysOfWeek {
		dayIndex[day] = i
	}

	for i := range entries {
		entry := &entries[i]
		day, ok := dayIndex[entry.DayOfWeek]
		if !ok {
			continue
		}
		for slot := range timeSlots {
			if entry.StartTime >= timeSlots[slot].Start && entry.EndTime <= timeSlots[slot].End {
				grid.Cells[slot][day] = entry
				break
			}
		}
	}
	return grid
}

// WeekBounds returns the Monday and Sunday of the week containing t,
// both at midnight in t's location.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 6)
}

// parseTimeOfDay converts a validated HH:MM string into a time of day.
func parseTimeOfDay(raw string) datatypes.Time {
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		return datatypes.NewTime(0, 0, 0, 0)
	}
	return datatypes.NewTime(parsed.Hour(), parsed.Minute(), 0, 0)
}
