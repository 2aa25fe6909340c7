package response

import (
	"oficina_torque/internal/domain/entities"
)

type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	IsTechnician bool   `json:"is_technician"`
}

func FromEmployee(e entities.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Role:         e.Role,
		Phone:        e.Phone,
		Email:        e.Email,
		IsTechnician: e.IsTechnician(),
	}
}

func FromEmployees(employees []entities.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, FromEmployee(e))
	}
	return out
}
