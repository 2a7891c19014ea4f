package handlers

import (
	"testing"
	"time"
)

func TestEventExpired(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		date    string
		endTime string
		want    bool
	}{
		{"ended yesterday", "2024-06-14", "23:59", true},
		{"ended earlier today", "2024-06-15", "14:29", true},
		{"ends exactly now", "2024-06-15", "14:30", false},
		{"ends later today", "2024-06-15", "14:31", false},
		{"ends tomorrow", "2024-06-16", "09:00", false},
		{"missing date", "", "12:00", false},
		{"missing end time", "2024-06-14", "", false},
	}

	for _, tt := range tests {
		if got := eventExpired(tt.date, tt.endTime, now); got != tt.want {
			t.Fatalf("%s: eventExpired(%q, %q) = %v, want %v", tt.name, tt.date, tt.endTime, got, tt.want)
		}
	}
}

func TestValidateEventSchedule(t *testing.T) {
	if err := validateEventSchedule("2024-06-15", "09:00", "17:00"); err != nil {
		t.Fatalf("expected valid schedule, got %v", err)
	}

	invalid := [][3]string{
		{"15-06-2024", "09:00", "17:00"},
		{"2024-6-15", "09:00", "17:00"},
		{"2024-06-15", "9:00", "17:00"},
		{"2024-06-15", "09:00", "5pm"},
		{"", "09:00", "17:00"},
	}

	for _, tt := range invalid {
		if err := validateEventSchedule(tt[0], tt[1], tt[2]); err == nil {
			t.Fatalf("expected error for schedule %v", tt)
		}
	}
}
