package services

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/SAP-F-2025/sims-service/internal/models"
)

func entry(id uint, day string, startH, startM, endH, endM int) models.TimetableEntry {
	return models.TimetableEntry{
		ScheduleID: id,
		ClassName:  "CS101-A",
		DayOfWeek:  day,
		StartTime:  datatypes.NewTime(startH, startM, 0, 0),
		EndTime:    datatypes.NewTime(endH, endM, 0, 0),
	}
}

func TestBuildTimetableGrid_Placement(t *testing.T) {
	entries := []models.TimetableEntry{
		entry(1, "Monday", 7, 15, 9, 15),   // exactly slot 1
		entry(2, "Wednesday", 9, 30, 11, 0), // inside slot 2
		entry(3, "Friday", 16, 20, 18, 20), // exactly slot 5
	}

	grid := BuildTimetableGrid(entries)

	if len(grid.Slots) != 5 {
		t.Fatalf("Expected 5 slots, got %d", len(grid.Slots))
	}
	if len(grid.Days) != 7 || grid.Days[0] != "Monday" {
		t.Fatalf("Expected Monday-first week, got %v", grid.Days)
	}

	if got := grid.Cells[0][0]; got == nil || got.ScheduleID != 1 {
		t.Errorf("Expected schedule 1 in slot 1 Monday, got %v", got)
	}
	if got := grid.Cells[1][2]; got == nil || got.ScheduleID != 2 {
		t.Errorf("Expected schedule 2 in slot 2 Wednesday, got %v", got)
	}
	if got := grid.Cells[4][4]; got == nil || got.ScheduleID != 3 {
		t.Errorf("Expected schedule 3 in slot 5 Friday, got %v", got)
	}
}

func TestBuildTimetableGrid_DropsUnplaceableEntries(t *testing.T) {
	entries := []models.TimetableEntry{
		entry(1, "Monday", 6, 0, 7, 0),    // before the first slot
		entry(2, "Monday", 9, 0, 10, 0),   // straddles slots 1 and 2
		entry(3, "Monday", 18, 30, 20, 0), // after the last slot
		entry(4, "Funday", 7, 15, 9, 15),  // unknown day
	}

	grid := BuildTimetableGrid(entries)

	for slot := range grid.Cells {
		for day := range grid.Cells[slot] {
			if grid.Cells[slot][day] != nil {
				t.Errorf("Expected empty cell at slot %d day %d, got %+v", slot, day, grid.Cells[slot][day])
			}
		}
	}
}

func TestBuildTimetableGrid_FirstSlotWins(t *testing.T) {
	// 7:15-9:15 fits only slot 1 even though later slots are checked.
	grid := BuildTimetableGrid([]models.TimetableEntry{entry(1, "Tuesday", 8, 0, 9, 0)})

	if got := grid.Cells[0][1]; got == nil || got.ScheduleID != 1 {
		t.Errorf("Expected entry in first matching slot, got %v", got)
	}
	for slot := 1; slot < len(grid.Cells); slot++ {
		if grid.Cells[slot][1] != nil {
			t.Errorf("Entry placed in slot %d as well", slot)
		}
	}
}

func TestBuildTimetableGrid_SameCellLastWins(t *testing.T) {
	entries := []models.TimetableEntry{
		entry(1, "Monday", 7, 15, 9, 15),
		entry(2, "Monday", 7, 30, 9, 0),
	}

	grid := BuildTimetableGrid(entries)

	if got := grid.Cells[0][0]; got == nil || got.ScheduleID != 2 {
		t.Errorf("Expected later entry to win the cell, got %v", got)
	}
}

func TestTimeSlots_Labels(t *testing.T) {
	slots := TimeSlots()
	want := []string{
		"Time slot 1 (7:15-9:15)",
		"Time slot 2 (9:25-11:25)",
		"Time slot 3 (12:00-14:00)",
		"Time slot 4 (14:10-16:10)",
		"Time slot 5 (16:20-18:20)",
	}
	if len(slots) != len(want) {
		t.Fatalf("Expected %d slots, got %d", len(want), len(slots))
	}
	for i, w := range want {
		if slots[i].Label != w {
			t.Errorf("Slot %d label = %q, want %q", i, slots[i].Label, w)
		}
		if slots[i].Start >= slots[i].End {
			t.Errorf("Slot %d start not before end", i)
		}
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantStart string
		wantEnd   string
	}{
		{"midweek", "2026-08-27", "2026-08-24", "2026-08-30"},  // Thursday
		{"monday", "2026-08-24", "2026-08-24", "2026-08-30"},   // already Monday
		{"sunday", "2026-08-30", "2026-08-24", "2026-08-30"},   // Sunday belongs to the past week
		{"year edge", "2026-01-01", "2025-12-29", "2026-01-04"}, // Thursday in week spanning years
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _ := time.Parse("2006-01-02", tt.in)
			start, end := WeekBounds(in)
			if start.Format("2006-01-02") != tt.wantStart {
				t.Errorf("WeekBounds(%s) start = %s, want %s", tt.in, start.Format("2006-01-02"), tt.wantStart)
			}
			if end.Format("2006-01-02") != tt.wantEnd {
				t.Errorf("WeekBounds(%s) end = %s, want %s", tt.in, end.Format("2006-01-02"), tt.wantEnd)
			}
		})
	}
}
