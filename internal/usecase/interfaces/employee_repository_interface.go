package interfaces

import (
	"context"

	"oficina_torque/internal/domain/entities"
)

//go:generate mockgen -source=employee_repository_interface.go -destination=mocks/employee_repository_mock.go -package=mock_interfaces

// IEmployeeRepository abstracts DynamoDB persistence for Employee.
//
// Technician filtering happens in the use case layer (role matching is a
// case-insensitive substring check DynamoDB cannot express), so List returns
// every employee.

type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
}
