package entities

import "testing"

func TestEmployee_IsTechnician(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{"technician", true},
		{"Senior Technician", true},
		{"MECHANIC", true},
		{"lead mechanic / welder", true},
		{"receptionist", false},
		{"manager", false},
		{"", false},
	}
	for _, tc := range cases {
		e := Employee{ID: "e", Role: tc.role}
		if got := e.IsTechnician(); got != tc.want {
			t.Fatalf("IsTechnician(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}
