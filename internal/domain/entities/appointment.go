package entities

import (
	"strings"
	"time"
)

// AppointmentStatus is the workflow state carried by an Appointment.
//
// The lifecycle is a straight line with one escape hatch:
//
//	pending -> assigned -> in_progress -> completed
//
// cancelled is terminal and reachable from any non-terminal state.
// Older imports of the shop data used "scheduled" for the initial state;
// ParseAppointmentStatus normalizes it to pending.

type AppointmentStatus string

const (
	AppointmentStatusPending    AppointmentStatus = "pending"
	AppointmentStatusAssigned   AppointmentStatus = "assigned"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus validates a raw status string, accepting the legacy
// "scheduled" spelling as a synonym for pending.
func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	switch AppointmentStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case "scheduled", AppointmentStatusPending:
		return AppointmentStatusPending, true
	case AppointmentStatusAssigned:
		return AppointmentStatusAssigned, true
	case AppointmentStatusInProgress:
		return AppointmentStatusInProgress, true
	case AppointmentStatusCompleted:
		return AppointmentStatusCompleted, true
	case AppointmentStatusCancelled:
		return AppointmentStatusCancelled, true
	}
	return "", false
}

// Terminal reports whether no further transition can leave this state.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// Active reports whether the appointment occupies a technician capacity slot.
func (s AppointmentStatus) Active() bool {
	return s == AppointmentStatusAssigned || s == AppointmentStatusInProgress
}

// Appointment is a scheduled unit of work on a vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//   - GSI2 (assigned_technician_id-index): assigned_technician_id
//
// CustomerID is denormalized from the vehicle's owner at booking time so
// appointment listings don't need a second lookup.
//
// The nullable timestamps track the workflow: assigned_at is stamped when a
// technician is assigned, started_at when work begins, completed_at when it
// finishes. They are monotonically non-decreasing whenever set.

type Appointment struct {
	ID                   string            `json:"id"`
	VehicleID            string            `json:"vehicle_id"`
	CustomerID           string            `json:"customer_id"`
	Description          string            `json:"description,omitempty"`
	ScheduledDate        time.Time         `json:"scheduled_date"`
	Status               AppointmentStatus `json:"status"`
	AssignedTechnicianID string            `json:"assigned_technician_id,omitempty"`
	AssignedAt           *time.Time        `json:"assigned_at,omitempty"`
	StartedAt            *time.Time        `json:"started_at,omitempty"`
	CompletedAt          *time.Time        `json:"completed_at,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
}

// LatestAppointment picks the appointment with the greatest scheduled date.
// Equal dates are broken by later creation, then by greater id, so the result
// is deterministic for any input order. Returns a zero Appointment when the
// slice is empty.
func LatestAppointment(appointments []Appointment) Appointment {
	var latest Appointment
	for _, a := range appointments {
		if latest.ID == "" || laterAppointment(a, latest) {
			latest = a
		}
	}
	return latest
}

func laterAppointment(a, b Appointment) bool {
	if !a.ScheduledDate.Equal(b.ScheduledDate) {
		return a.ScheduledDate.After(b.ScheduledDate)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
