package request

import (
	"strings"

	"oficina_torque/internal/domain/entities"
)

type RegisterVehicleRequest struct {
	CustomerID   string `json:"customer_id" binding:"required"`
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	VIN          string `json:"vin" binding:"required"`
	LicensePlate string `json:"license_plate"`
	Color        string `json:"color"`
}

func (r RegisterVehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		CustomerID:   strings.TrimSpace(r.CustomerID),
		Make:         strings.TrimSpace(r.Make),
		Model:        strings.TrimSpace(r.Model),
		Year:         r.Year,
		VIN:          strings.TrimSpace(r.VIN),
		LicensePlate: strings.TrimSpace(r.LicensePlate),
		Color:        strings.TrimSpace(r.Color),
	}
}
