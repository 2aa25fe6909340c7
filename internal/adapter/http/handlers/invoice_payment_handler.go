package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "oficina_torque/internal/adapter/http/dto/response"
	"oficina_torque/internal/usecase"
	"oficina_torque/pkg"

	"github.com/gin-gonic/gin"
)

// InvoicePaymentHandler handles payments for completed repair orders.

type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// CreatePaymentByRepairOrderID creates/approves a payment using
// repair_order_id in path. The body is forwarded to the gateway as-is.
func (h *InvoicePaymentHandler) CreatePaymentByRepairOrderID(c *gin.Context) {
	repairOrderID := c.Param("repair_order_id")
	log.Printf("[payment][handler] create start repair_order_id=%s", repairOrderID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload repair_order_id=%s err=%v", repairOrderID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload repair_order_id=%s err=%v", repairOrderID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), repairOrderID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed repair_order_id=%s err=%v", repairOrderID, err)
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success repair_order_id=%s payment_id=%s status=%s", repairOrderID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

// GetPaymentByRepairOrderID returns the latest payment for a repair order.
func (h *InvoicePaymentHandler) GetPaymentByRepairOrderID(c *gin.Context) {
	repairOrderID := c.Param("repair_order_id")
	log.Printf("[payment][handler] get-by-order start repair_order_id=%s", repairOrderID)

	payments, err := h.usecase.ListByRepairOrderID(c.Request.Context(), repairOrderID)
	if err != nil {
		log.Printf("[payment][handler] get-by-order failed repair_order_id=%s err=%v", repairOrderID, err)
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-order not-found repair_order_id=%s", repairOrderID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-order success repair_order_id=%s payment_id=%s status=%s", repairOrderID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromInvoicePayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRepairOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRepairOrderNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_ORDER_NOT_FOUND", "Repair order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotCompleted):
		return pkg.NewDomainErrorSimple("ORDER_NOT_COMPLETED", "Repair order work is not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
