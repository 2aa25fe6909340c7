package interfaces

import (
	"context"

	"oficina_torque/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_mock.go -package=mock_interfaces

// ICustomerRepository abstracts DynamoDB persistence for Customer.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}
