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
	ErrRepairOrderNotFound  = errors.New("repair order not found")
	ErrInvalidRepairOrderID = errors.New("invalid repair order id")
	ErrEmptyRepairOrder     = errors.New("repair order needs at least one service or part")
)

// RepairOrderView is a repair order together with its resolved status. The
// status lives only in this read model, never on the stored record.
type RepairOrderView struct {
	entities.RepairOrder
	Status entities.AppointmentStatus `json:"status"`
}

// IRepairOrderUseCase exposes repair order billing records. Status is derived
// on every read from the vehicle's most recent appointment.

type IRepairOrderUseCase interface {
	Open(ctx context.Context, order entities.RepairOrder) (RepairOrderView, error)
	GetByID(ctx context.Context, id string) (RepairOrderView, error)
	ListByStatuses(ctx context.Context, statuses []string) ([]RepairOrderView, error)
	ResolveStatus(ctx context.Context, order entities.RepairOrder) (entities.AppointmentStatus, error)
}

type RepairOrderUseCase struct {
	orders       interfaces.IRepairOrderRepository
	appointments interfaces.IAppointmentRepository
	vehicles     interfaces.IVehicleRepository
	now          func() time.Time
}

var _ IRepairOrderUseCase = (*RepairOrderUseCase)(nil)

func NewRepairOrderUseCase(orders interfaces.IRepairOrderRepository, appointments interfaces.IAppointmentRepository, vehicles interfaces.IVehicleRepository) *RepairOrderUseCase {
	return &RepairOrderUseCase{
		orders:       orders,
		appointments: appointments,
		vehicles:     vehicles,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Open creates a repair order for a vehicle. The total is priced from the
// line items at creation time; the caller-supplied total is ignored.
func (u *RepairOrderUseCase) Open(ctx context.Context, order entities.RepairOrder) (RepairOrderView, error) {
	order.VehicleID = strings.TrimSpace(order.VehicleID)
	if order.VehicleID == "" {
		return RepairOrderView{}, ErrInvalidVehicleID
	}
	if len(order.Services) == 0 && len(order.Parts) == 0 {
		return RepairOrderView{}, ErrEmptyRepairOrder
	}

	vehicle, err := u.vehicles.GetByID(ctx, order.VehicleID)
	if err != nil {
		return RepairOrderView{}, err
	}
	if vehicle.ID == "" {
		return RepairOrderView{}, ErrVehicleNotFound
	}

	order.ID = uuid.NewString()
	order.CreatedAt = u.now()
	order.TotalCost = order.CalculateTotalCost()

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return RepairOrderView{}, err
	}
	return u.withStatus(ctx, created)
}

func (u *RepairOrderUseCase) GetByID(ctx context.Context, id string) (RepairOrderView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RepairOrderView{}, ErrInvalidRepairOrderID
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return RepairOrderView{}, err
	}
	if order.ID == "" {
		return RepairOrderView{}, ErrRepairOrderNotFound
	}
	return u.withStatus(ctx, order)
}

// ListByStatuses returns the orders whose resolved status is in the requested
// set. An empty set means no status filter.
func (u *RepairOrderUseCase) ListByStatuses(ctx context.Context, statuses []string) ([]RepairOrderView, error) {
	want := make(map[entities.AppointmentStatus]bool, len(statuses))
	for _, raw := range statuses {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		parsed, ok := entities.ParseAppointmentStatus(raw)
		if !ok {
			return nil, ErrInvalidAppointmentStatus
		}
		want[parsed] = true
	}

	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RepairOrderView, 0, len(orders))
	for _, order := range orders {
		view, err := u.withStatus(ctx, order)
		if err != nil {
			return nil, err
		}
		if len(want) == 0 || want[view.Status] {
			views = append(views, view)
		}
	}
	return views, nil
}

// ResolveStatus computes the order's effective status: the status of the
// appointment with the latest scheduled date for the order's vehicle, or
// pending when the vehicle has no appointments. Total over well-formed
// orders; only store errors propagate.
func (u *RepairOrderUseCase) ResolveStatus(ctx context.Context, order entities.RepairOrder) (entities.AppointmentStatus, error) {
	appointments, err := u.appointments.ListByVehicleID(ctx, order.VehicleID)
	if err != nil {
		return "", err
	}
	latest := entities.LatestAppointment(appointments)
	if latest.ID == "" {
		return entities.AppointmentStatusPending, nil
	}
	return latest.Status, nil
}

func (u *RepairOrderUseCase) withStatus(ctx context.Context, order entities.RepairOrder) (RepairOrderView, error) {
	status, err := u.ResolveStatus(ctx, order)
	if err != nil {
		return RepairOrderView{}, err
	}
	return RepairOrderView{RepairOrder: order, Status: status}, nil
}
