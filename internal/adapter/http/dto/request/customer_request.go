package request

import (
	"strings"

	"oficina_torque/internal/domain/entities"
)

type RegisterCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (r RegisterCustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   strings.TrimSpace(r.Email),
		Address: strings.TrimSpace(r.Address),
	}
}
