package request

import (
	"errors"
	"strings"

	"oficina_torque/internal/domain/entities"
)

var (
	ErrNoLineItems = errors.New("repair order needs at least one service or part")
)

type ServiceLineRequest struct {
	Name           string  `json:"name" binding:"required"`
	LaborCost      float64 `json:"labor_cost"`
	Taxable        bool    `json:"taxable"`
	WarrantyMonths int     `json:"warranty_months"`
}

type PartLineRequest struct {
	Name           string  `json:"name" binding:"required"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity" binding:"required"`
	Taxable        bool    `json:"taxable"`
	WarrantyMonths int     `json:"warranty_months"`
}

// OpenRepairOrderRequest opens a repair order with its line items. The total
// is always recomputed server-side from the items and the discount/tax knobs.
type OpenRepairOrderRequest struct {
	VehicleID       string               `json:"vehicle_id" binding:"required"`
	Services        []ServiceLineRequest `json:"services"`
	Parts           []PartLineRequest    `json:"parts"`
	DiscountAmount  float64              `json:"discount_amount"`
	DiscountPercent float64              `json:"discount_percent"`
	TaxPercent      float64              `json:"tax_percent"`
	Notes           string               `json:"notes"`
}

func (r OpenRepairOrderRequest) ResolveVehicleID() string {
	return strings.TrimSpace(r.VehicleID)
}

func (r OpenRepairOrderRequest) ToEntity() (entities.RepairOrder, error) {
	if len(r.Services) == 0 && len(r.Parts) == 0 {
		return entities.RepairOrder{}, ErrNoLineItems
	}

	order := entities.RepairOrder{
		VehicleID:       r.ResolveVehicleID(),
		DiscountAmount:  r.DiscountAmount,
		DiscountPercent: r.DiscountPercent,
		TaxPercent:      r.TaxPercent,
		Notes:           strings.TrimSpace(r.Notes),
	}
	for _, s := range r.Services {
		order.Services = append(order.Services, entities.ServiceLine{
			Name:           strings.TrimSpace(s.Name),
			LaborCost:      s.LaborCost,
			Taxable:        s.Taxable,
			WarrantyMonths: s.WarrantyMonths,
		})
	}
	for _, p := range r.Parts {
		order.Parts = append(order.Parts, entities.PartLine{
			Name:           strings.TrimSpace(p.Name),
			UnitPrice:      p.UnitPrice,
			Quantity:       p.Quantity,
			Taxable:        p.Taxable,
			WarrantyMonths: p.WarrantyMonths,
		})
	}
	return order, nil
}
