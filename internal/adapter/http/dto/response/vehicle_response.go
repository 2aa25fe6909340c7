package response

import (
	"time"

	"oficina_torque/internal/domain/entities"
)

type VehicleResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	VIN          string    `json:"vin"`
	LicensePlate string    `json:"license_plate,omitempty"`
	Color        string    `json:"color,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		VIN:          v.VIN,
		LicensePlate: v.LicensePlate,
		Color:        v.Color,
		CreatedAt:    v.CreatedAt,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
