package entities

import "time"

// Vehicle is a customer's car serviced by the shop.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id

type Vehicle struct {
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
