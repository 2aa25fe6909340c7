package interfaces

import (
	"context"
	"time"

	"oficina_torque/internal/domain/entities"
)

//go:generate mockgen -source=appointment_repository_interface.go -destination=mocks/appointment_repository_mock.go -package=mock_interfaces

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.
//
// The transition methods (Assign/Start/Complete/Unassign/Cancel) are
// conditional writes guarded by the current status. When the guard fails
// (the appointment does not exist or is no longer in the expected state),
// they return a zero-value Appointment and a nil error; the use case decides
// how to surface that. This is what serializes concurrent transitions on the
// same appointment: only one caller's conditional write succeeds.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context) ([]entities.Appointment, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Appointment, error)
	ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.Appointment, error)

	// Assign sets the technician and assigned_at and moves pending -> assigned.
	Assign(ctx context.Context, id, technicianID string, at time.Time) (entities.Appointment, error)
	// Start stamps started_at and moves assigned -> in_progress.
	Start(ctx context.Context, id string, at time.Time) (entities.Appointment, error)
	// Complete stamps completed_at and moves in_progress -> completed.
	Complete(ctx context.Context, id string, at time.Time) (entities.Appointment, error)
	// Unassign clears the technician and assigned_at and moves assigned -> pending.
	Unassign(ctx context.Context, id string) (entities.Appointment, error)
	// Cancel moves any non-terminal status -> cancelled, preserving timestamps.
	Cancel(ctx context.Context, id string) (entities.Appointment, error)
}
