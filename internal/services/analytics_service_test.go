package services

import (
	"testing"
	"time"

	"pharma-backend/internal/models"
	"pharma-backend/internal/timeutil"
)

func TestFillMissingDates(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)

	rows := []models.DailySales{
		{Date: "2026-08-31", Total: 120.50},
		{Date: "2026-08-28", Total: 45},
	}

	filled := FillMissingDates(rows, today, 10)

	if len(filled) != 10 {
		t.Fatalf("expected exactly 10 entries, got %d", len(filled))
	}
	if filled[0].Date != "2026-08-22" {
		t.Errorf("window should start 9 days back: got %s", filled[0].Date)
	}
	if filled[9].Date != "2026-08-31" {
		t.Errorf("window should end today: got %s", filled[9].Date)
	}
	if filled[9].Total != 120.50 {
		t.Errorf("today's total lost: got %v", filled[9].Total)
	}
	if filled[6].Date != "2026-08-28" || filled[6].Total != 45 {
		t.Errorf("mid-window row misplaced: %+v", filled[6])
	}

	// Ascending and contiguous
	for i := 1; i < len(filled); i++ {
		prev, err := timeutil.ParseDate(filled[i-1].Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", filled[i-1].Date, err)
		}
		cur, err := timeutil.ParseDate(filled[i].Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", filled[i].Date, err)
		}
		if !cur.Equal(prev.AddDate(0, 0, 1)) {
			t.Errorf("gap between %s and %s", filled[i-1].Date, filled[i].Date)
		}
	}

	// Absent days carry zero, not null
	zeros := 0
	for _, e := range filled {
		if e.Total == 0 {
			zeros++
		}
	}
	if zeros != 8 {
		t.Errorf("expected 8 zero-filled days, got %d", zeros)
	}
}

func TestFillMissingDatesIgnoresRowsOutsideWindow(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)

	rows := []models.DailySales{
		{Date: "2026-08-01", Total: 999}, // older than the window
		{Date: "2026-09-05", Total: 777}, // future
	}

	filled := FillMissingDates(rows, today, 10)
	for _, e := range filled {
		if e.Total != 0 {
			t.Errorf("out-of-window row leaked into %s: %v", e.Date, e.Total)
		}
	}
}

func TestFillMissingDatesMonthBoundary(t *testing.T) {
	today := time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local)

	filled := FillMissingDates(nil, today, 10)
	if filled[0].Date != "2026-08-25" {
		t.Errorf("window should cross the month boundary: got %s", filled[0].Date)
	}
	if filled[9].Date != "2026-09-03" {
		t.Errorf("window should end today: got %s", filled[9].Date)
	}
}
