package interfaces

import (
	"context"

	"oficina_torque/internal/domain/entities"
)

//go:generate mockgen -source=vehicle_repository_interface.go -destination=mocks/vehicle_repository_mock.go -package=mock_interfaces

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
}
