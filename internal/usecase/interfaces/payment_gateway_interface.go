package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The backend uses it to charge a completed repair order and persist the
// provider response payload for traceability. The repair order id is passed
// through so provider-side logs correlate with the shop's records.
type IPaymentGateway interface {
	ChargeRepairOrder(ctx context.Context, repairOrderID string, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
