package interfaces

import (
	"context"

	"oficina_torque/internal/domain/entities"
)

//go:generate mockgen -source=repair_order_repository_interface.go -destination=mocks/repair_order_repository_mock.go -package=mock_interfaces

// IRepairOrderRepository abstracts DynamoDB persistence for RepairOrder.
//
// Repair orders are immutable billing records once opened; status is derived
// from appointments at read time and never written here.

type IRepairOrderRepository interface {
	Create(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error)
	GetByID(ctx context.Context, id string) (entities.RepairOrder, error)
	List(ctx context.Context) ([]entities.RepairOrder, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.RepairOrder, error)
}
