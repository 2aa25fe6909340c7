package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase/interfaces"
)

var (
	ErrInvoicePaymentNotFound = errors.New("invoice payment not found")
	ErrInvalidPaymentPayload  = errors.New("invalid payment payload")
	ErrOrderNotCompleted      = errors.New("repair order work not completed")
)

// IInvoicePaymentUseCase charges a completed repair order through the payment
// gateway and persists the provider payload.
//
// Precondition: the order's resolved status is completed; the shop only
// bills after the vehicle's latest appointment finished.

type IInvoicePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, repairOrderID string, mpPayload json.RawMessage) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByRepairOrderID(ctx context.Context, repairOrderID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo    interfaces.IInvoicePaymentRepository
	orders  IRepairOrderUseCase
	gateway interfaces.IPaymentGateway
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, orders IRepairOrderUseCase, gateway interfaces.IPaymentGateway) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, orders: orders, gateway: gateway}
}

func (u *InvoicePaymentUseCase) CreateAndApprove(ctx context.Context, repairOrderID string, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	mockMode := isPaymentGatewayMockEnabled()
	repairOrderID = strings.TrimSpace(repairOrderID)
	if repairOrderID == "" {
		return entities.InvoicePayment{}, ErrInvalidRepairOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			return entities.InvoicePayment{}, ErrInvalidPaymentPayload
		}
	}
	if u.gateway == nil && !mockMode {
		return entities.InvoicePayment{}, errors.New("payment gateway not configured")
	}

	order, err := u.orders.GetByID(ctx, repairOrderID)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if !mockMode && order.Status != entities.AppointmentStatusCompleted {
		log.Printf("[payment][usecase] order not completed repair_order_id=%s status=%s", repairOrderID, order.Status)
		return entities.InvoicePayment{}, ErrOrderNotCompleted
	}

	// The source of truth for the amount is the priced order in the store;
	// external_reference helps Mercado Pago event reconciliation.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = repairOrderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Repair order %s", repairOrderID)
		}
		reqMap["transaction_amount"] = order.TotalCost
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway repair_order_id=%s", repairOrderID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.InvoicePayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.ChargeRepairOrder(ctx, repairOrderID, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed repair_order_id=%s err=%v", repairOrderID, err)
			return entities.InvoicePayment{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed repair_order_id=%s err=%v", repairOrderID, err)
	}

	p := entities.InvoicePayment{
		ID:            providerPaymentID,
		RepairOrderID: repairOrderID,
		Date:          time.Now().UTC(),
		Status:        entities.PaymentStatusApproved,
		MPPayloadRaw:  providerResp,
		MPPayload:     parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success repair_order_id=%s payment_id=%s", repairOrderID, created.ID)
	return created, nil
}

func (u *InvoicePaymentUseCase) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoicePayment{}, ErrInvoicePaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" {
		return entities.InvoicePayment{}, ErrInvoicePaymentNotFound
	}
	return p, nil
}

func (u *InvoicePaymentUseCase) ListByRepairOrderID(ctx context.Context, repairOrderID string) ([]entities.InvoicePayment, error) {
	repairOrderID = strings.TrimSpace(repairOrderID)
	if repairOrderID == "" {
		return nil, ErrInvalidRepairOrderID
	}
	return u.repo.ListByRepairOrderID(ctx, repairOrderID)
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	return v == "1" || v == "true" || v == "yes"
}
