package request

import (
	"strings"

	"oficina_torque/internal/domain/entities"
)

type RegisterEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (r RegisterEmployeeRequest) ToEntity() entities.Employee {
	return entities.Employee{
		Name:  strings.TrimSpace(r.Name),
		Role:  strings.TrimSpace(r.Role),
		Phone: strings.TrimSpace(r.Phone),
		Email: strings.TrimSpace(r.Email),
	}
}
