package response

import (
	"time"

	"oficina_torque/internal/domain/entities"
)

type AppointmentResponse struct {
	ID                   string     `json:"id"`
	VehicleID            string     `json:"vehicle_id"`
	CustomerID           string     `json:"customer_id"`
	Description          string     `json:"description,omitempty"`
	ScheduledDate        time.Time  `json:"scheduled_date"`
	Status               string     `json:"status"`
	AssignedTechnicianID string     `json:"assigned_technician_id,omitempty"`
	AssignedAt           *time.Time `json:"assigned_at,omitempty"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:                   a.ID,
		VehicleID:            a.VehicleID,
		CustomerID:           a.CustomerID,
		Description:          a.Description,
		ScheduledDate:        a.ScheduledDate,
		Status:               string(a.Status),
		AssignedTechnicianID: a.AssignedTechnicianID,
		AssignedAt:           a.AssignedAt,
		StartedAt:            a.StartedAt,
		CompletedAt:          a.CompletedAt,
		CreatedAt:            a.CreatedAt,
	}
}

func FromAppointments(appointments []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, FromAppointment(a))
	}
	return out
}
