package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound          = errors.New("vehicle not found")
	ErrInvalidVehicleID         = errors.New("invalid vehicle id")
	ErrInvalidScheduledDate     = errors.New("invalid scheduled date")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

// IAppointmentUseCase exposes appointment booking and reads. Bookings always
// start in pending; every later status change goes through IWorkflowUseCase.

type IAppointmentUseCase interface {
	Book(ctx context.Context, vehicleID, description string, scheduledDate time.Time) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	List(ctx context.Context, vehicleID, status string) ([]entities.Appointment, error)
}

type AppointmentUseCase struct {
	appointments interfaces.IAppointmentRepository
	vehicles     interfaces.IVehicleRepository
	now          func() time.Time
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(appointments interfaces.IAppointmentRepository, vehicles interfaces.IVehicleRepository) *AppointmentUseCase {
	return &AppointmentUseCase{
		appointments: appointments,
		vehicles:     vehicles,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *AppointmentUseCase) Book(ctx context.Context, vehicleID, description string, scheduledDate time.Time) (entities.Appointment, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Appointment{}, ErrInvalidVehicleID
	}
	if scheduledDate.IsZero() {
		return entities.Appointment{}, ErrInvalidScheduledDate
	}

	vehicle, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if vehicle.ID == "" {
		return entities.Appointment{}, ErrVehicleNotFound
	}

	a := entities.Appointment{
		ID:            uuid.NewString(),
		VehicleID:     vehicle.ID,
		CustomerID:    vehicle.CustomerID,
		Description:   strings.TrimSpace(description),
		ScheduledDate: scheduledDate.UTC(),
		Status:        entities.AppointmentStatusPending,
		CreatedAt:     u.now(),
	}
	return u.appointments.Create(ctx, a)
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := u.appointments.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

// List filters appointments by vehicle and/or status. Both filters are
// optional; an unknown status value is rejected rather than matching nothing.
func (u *AppointmentUseCase) List(ctx context.Context, vehicleID, status string) ([]entities.Appointment, error) {
	var wantStatus entities.AppointmentStatus
	if strings.TrimSpace(status) != "" {
		parsed, ok := entities.ParseAppointmentStatus(status)
		if !ok {
			return nil, ErrInvalidAppointmentStatus
		}
		wantStatus = parsed
	}

	var (
		all []entities.Appointment
		err error
	)
	if vehicleID = strings.TrimSpace(vehicleID); vehicleID != "" {
		all, err = u.appointments.ListByVehicleID(ctx, vehicleID)
	} else {
		all, err = u.appointments.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	if wantStatus == "" {
		return all, nil
	}
	filtered := make([]entities.Appointment, 0, len(all))
	for _, a := range all {
		if a.Status == wantStatus {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
