package entities

import (
	"testing"
	"time"
)

func TestParseAppointmentStatus(t *testing.T) {
	cases := []struct {
		in   string
		want AppointmentStatus
		ok   bool
	}{
		{"pending", AppointmentStatusPending, true},
		{"scheduled", AppointmentStatusPending, true}, // legacy spelling
		{" Assigned ", AppointmentStatusAssigned, true},
		{"IN_PROGRESS", AppointmentStatusInProgress, true},
		{"completed", AppointmentStatusCompleted, true},
		{"cancelled", AppointmentStatusCancelled, true},
		{"done", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseAppointmentStatus(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseAppointmentStatus(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAppointmentStatus_TerminalAndActive(t *testing.T) {
	if !AppointmentStatusCompleted.Terminal() || !AppointmentStatusCancelled.Terminal() {
		t.Fatalf("completed and cancelled must be terminal")
	}
	if AppointmentStatusPending.Terminal() || AppointmentStatusAssigned.Terminal() || AppointmentStatusInProgress.Terminal() {
		t.Fatalf("non-terminal states reported terminal")
	}
	if !AppointmentStatusAssigned.Active() || !AppointmentStatusInProgress.Active() {
		t.Fatalf("assigned and in_progress must occupy a capacity slot")
	}
	if AppointmentStatusPending.Active() || AppointmentStatusCompleted.Active() || AppointmentStatusCancelled.Active() {
		t.Fatalf("only assigned/in_progress occupy a capacity slot")
	}
}

func TestLatestAppointment(t *testing.T) {
	day1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("empty slice", func(t *testing.T) {
		if got := LatestAppointment(nil); got.ID != "" {
			t.Fatalf("expected zero appointment, got %+v", got)
		}
	})

	t.Run("latest scheduled date wins", func(t *testing.T) {
		got := LatestAppointment([]Appointment{
			{ID: "apt-10", ScheduledDate: day1, Status: AppointmentStatusCompleted},
			{ID: "apt-11", ScheduledDate: day2, Status: AppointmentStatusInProgress},
		})
		if got.ID != "apt-11" {
			t.Fatalf("expected apt-11, got %s", got.ID)
		}
	})

	t.Run("order independence", func(t *testing.T) {
		a := Appointment{ID: "apt-10", ScheduledDate: day2}
		b := Appointment{ID: "apt-11", ScheduledDate: day1}
		if LatestAppointment([]Appointment{a, b}).ID != LatestAppointment([]Appointment{b, a}).ID {
			t.Fatalf("result depends on input order")
		}
	})

	t.Run("equal dates break by creation then id", func(t *testing.T) {
		got := LatestAppointment([]Appointment{
			{ID: "apt-a", ScheduledDate: day1, CreatedAt: day1.Add(-time.Hour)},
			{ID: "apt-b", ScheduledDate: day1, CreatedAt: day1},
		})
		if got.ID != "apt-b" {
			t.Fatalf("expected most recently created apt-b, got %s", got.ID)
		}

		got = LatestAppointment([]Appointment{
			{ID: "apt-b", ScheduledDate: day1, CreatedAt: day1},
			{ID: "apt-a", ScheduledDate: day1, CreatedAt: day1},
		})
		if got.ID != "apt-b" {
			t.Fatalf("expected greater id apt-b on full tie, got %s", got.ID)
		}
	})
}
