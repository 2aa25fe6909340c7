package response

import (
	"time"

	"oficina_torque/internal/domain/entities"
)

type InvoicePaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	ID            string    `json:"id"`
	RepairOrderID string    `json:"repair_order_id"`
	PaymentDate   time.Time `json:"payment_date"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		PaymentID:     p.ID,
		ID:            p.ID,
		RepairOrderID: p.RepairOrderID,
		PaymentDate:   p.Date,
		Date:          p.Date,
		Status:        string(p.Status),
		MPPayloadRaw:  string(p.MPPayloadRaw),
		MPPayload:     p.MPPayload,
	}
}
