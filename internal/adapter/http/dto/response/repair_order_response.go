package response

import (
	"time"

	"oficina_torque/internal/usecase"
)

type ServiceLineResponse struct {
	Name           string  `json:"name"`
	LaborCost      float64 `json:"labor_cost"`
	Taxable        bool    `json:"taxable"`
	WarrantyMonths int     `json:"warranty_months,omitempty"`
}

type PartLineResponse struct {
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	TotalPrice     float64 `json:"total_price"`
	Taxable        bool    `json:"taxable"`
	WarrantyMonths int     `json:"warranty_months,omitempty"`
}

type RepairOrderResponse struct {
	ID              string                `json:"id"`
	VehicleID       string                `json:"vehicle_id"`
	Status          string                `json:"status"`
	Services        []ServiceLineResponse `json:"services"`
	Parts           []PartLineResponse    `json:"parts"`
	DiscountAmount  float64               `json:"discount_amount,omitempty"`
	DiscountPercent float64               `json:"discount_percent,omitempty"`
	TaxPercent      float64               `json:"tax_percent,omitempty"`
	TotalCost       float64               `json:"total_cost"`
	Notes           string                `json:"notes,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

func FromRepairOrderView(v usecase.RepairOrderView) RepairOrderResponse {
	services := make([]ServiceLineResponse, 0, len(v.Services))
	for _, s := range v.Services {
		services = append(services, ServiceLineResponse{
			Name:           s.Name,
			LaborCost:      s.LaborCost,
			Taxable:        s.Taxable,
			WarrantyMonths: s.WarrantyMonths,
		})
	}
	parts := make([]PartLineResponse, 0, len(v.Parts))
	for _, p := range v.Parts {
		parts = append(parts, PartLineResponse{
			Name:           p.Name,
			UnitPrice:      p.UnitPrice,
			Quantity:       p.Quantity,
			TotalPrice:     p.TotalPrice(),
			Taxable:        p.Taxable,
			WarrantyMonths: p.WarrantyMonths,
		})
	}
	return RepairOrderResponse{
		ID:              v.ID,
		VehicleID:       v.VehicleID,
		Status:          string(v.Status),
		Services:        services,
		Parts:           parts,
		DiscountAmount:  v.DiscountAmount,
		DiscountPercent: v.DiscountPercent,
		TaxPercent:      v.TaxPercent,
		TotalCost:       v.TotalCost,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
	}
}

func FromRepairOrderViews(views []usecase.RepairOrderView) []RepairOrderResponse {
	out := make([]RepairOrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromRepairOrderView(v))
	}
	return out
}
