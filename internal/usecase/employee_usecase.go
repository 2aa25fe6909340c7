package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidEmployeeID  = errors.New("invalid employee id")
	ErrInvalidEmployeeArg = errors.New("invalid employee payload")
)

type IEmployeeUseCase interface {
	Register(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
}

// EmployeeUseCase manages the shop roster. Registration accepts any role:
// non-technician employees are valid records, they just never show up in
// workload reports or pass the assignment role check.

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (u *EmployeeUseCase) Register(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Role = strings.TrimSpace(e.Role)
	if e.Name == "" || e.Role == "" {
		return entities.Employee{}, ErrInvalidEmployeeArg
	}
	e.ID = uuid.NewString()
	return u.repo.Create(ctx, e)
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.List(ctx)
}
