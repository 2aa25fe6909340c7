package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoicePayment is a payment charged against a completed repair order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (repair_order_id-index): repair_order_id
//
// Mercado Pago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for debugging.

type InvoicePayment struct {
	ID            string        `json:"id"`
	RepairOrderID string        `json:"repair_order_id"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
