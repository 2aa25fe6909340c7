package request

import (
	"strings"
	"time"
)

// BookAppointmentRequest creates a pending appointment for a vehicle.
// scheduled_date is RFC3339.
type BookAppointmentRequest struct {
	VehicleID     string    `json:"vehicle_id" binding:"required"`
	Description   string    `json:"description"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}

func (r BookAppointmentRequest) ResolveVehicleID() string {
	return strings.TrimSpace(r.VehicleID)
}

// AssignTechnicianRequest carries the technician chosen for an appointment.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

func (r AssignTechnicianRequest) ResolveTechnicianID() string {
	return strings.TrimSpace(r.TechnicianID)
}
