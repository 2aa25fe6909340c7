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
	ErrInvalidVehicleArg = errors.New("invalid vehicle payload")
)

type IVehicleUseCase interface {
	Register(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
}

type VehicleUseCase struct {
	repo      interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
	now       func() time.Time
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customers interfaces.ICustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{
		repo:      repo,
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *VehicleUseCase) Register(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.CustomerID = strings.TrimSpace(v.CustomerID)
	if v.CustomerID == "" {
		return entities.Vehicle{}, ErrInvalidCustomerID
	}
	v.VIN = strings.TrimSpace(v.VIN)
	if v.Make == "" || v.Model == "" || v.VIN == "" {
		return entities.Vehicle{}, ErrInvalidVehicleArg
	}

	owner, err := u.customers.GetByID(ctx, v.CustomerID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == "" {
		return entities.Vehicle{}, ErrCustomerNotFound
	}

	v.ID = uuid.NewString()
	v.CreatedAt = u.now()
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}
