package timeutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 8, 31, 17, 45, 12, 999, time.Local)
	got := StartOfDay(ts)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("StartOfDay should zero the clock: got %v", got)
	}
	if got.Year() != 2026 || got.Month() != time.August || got.Day() != 31 {
		t.Errorf("StartOfDay changed the date: got %v", got)
	}
}

func TestDateStringRoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 31, 23, 59, 0, 0, time.Local)

	s := DateString(ts)
	if s != "2026-08-31" {
		t.Errorf("DateString = %q, want 2026-08-31", s)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	if !parsed.Equal(StartOfDay(ts)) {
		t.Errorf("round trip lost the day: %v vs %v", parsed, StartOfDay(ts))
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, bad := range []string{"31-08-2026", "2026/08/31", "Aug 31 2026", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}
