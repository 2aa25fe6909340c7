package entities

import "time"

// ServiceLine is a labor item billed on a repair order.
type ServiceLine struct {
	Name           string  `json:"name"`
	LaborCost      float64 `json:"labor_cost"`
	Taxable        bool    `json:"taxable"`
	WarrantyMonths int     `json:"warranty_months,omitempty"`
}

// PartLine is a part item billed on a repair order.
type PartLine struct {
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	Taxable        bool    `json:"taxable"`
	WarrantyMonths int     `json:"warranty_months,omitempty"`
}

func (p PartLine) TotalPrice() float64 {
	return p.UnitPrice * float64(p.Quantity)
}

// RepairOrder is the billing/work-item record for a vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//
// A repair order carries no status column. Its effective status is derived on
// every read from the vehicle's most recent appointment, so it can never
// drift out of sync with the appointment history.

type RepairOrder struct {
	ID              string        `json:"id"`
	VehicleID       string        `json:"vehicle_id"`
	Services        []ServiceLine `json:"services,omitempty"`
	Parts           []PartLine    `json:"parts,omitempty"`
	DiscountAmount  float64       `json:"discount_amount,omitempty"`
	DiscountPercent float64       `json:"discount_percent,omitempty"`
	TaxPercent      float64       `json:"tax_percent,omitempty"`
	TotalCost       float64       `json:"total_cost"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// CalculateTotalCost prices the order: labor plus parts, minus the discount
// (percent wins over a flat amount when both are set), plus tax applied to
// the taxable portion after discount.
func (o RepairOrder) CalculateTotalCost() float64 {
	var laborTotal, partsTotal float64
	for _, s := range o.Services {
		laborTotal += s.LaborCost
	}
	for _, p := range o.Parts {
		partsTotal += p.TotalPrice()
	}
	subtotal := laborTotal + partsTotal

	var discount float64
	if o.DiscountPercent > 0 {
		discount = subtotal * o.DiscountPercent / 100
	} else if o.DiscountAmount > 0 {
		discount = o.DiscountAmount
	}

	var taxableTotal float64
	for _, s := range o.Services {
		if s.Taxable {
			taxableTotal += s.LaborCost
		}
	}
	for _, p := range o.Parts {
		if p.Taxable {
			taxableTotal += p.TotalPrice()
		}
	}
	taxableAmount := taxableTotal - discount

	var tax float64
	if o.TaxPercent > 0 {
		tax = taxableAmount * o.TaxPercent / 100
	}

	return subtotal - discount + tax
}
