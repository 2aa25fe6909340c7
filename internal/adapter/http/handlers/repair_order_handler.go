package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "oficina_torque/internal/adapter/http/dto/request"
	response "oficina_torque/internal/adapter/http/dto/response"
	"oficina_torque/internal/usecase"
	"oficina_torque/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRepairOrderPayload = pkg.NewDomainErrorSimple("INVALID_REPAIR_ORDER_INPUT", "Invalid repair order payload", http.StatusBadRequest)
)

// RepairOrderHandler handles repair order billing records. The status in
// every response is derived from the vehicle's latest appointment at read
// time, never stored.

type RepairOrderHandler struct {
	usecase usecase.IRepairOrderUseCase
}

func NewRepairOrderHandler(uc usecase.IRepairOrderUseCase) *RepairOrderHandler {
	return &RepairOrderHandler{usecase: uc}
}

func (h *RepairOrderHandler) Open(c *gin.Context) {
	var payload request.OpenRepairOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairOrderPayload.HTTPStatus, errInvalidRepairOrderPayload.ToHTTPError())
		return
	}

	order, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidRepairOrderPayload.HTTPStatus, errInvalidRepairOrderPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.Open(c.Request.Context(), order)
	if err != nil {
		appErr := mapRepairOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRepairOrderView(view))
}

func (h *RepairOrderHandler) GetByID(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRepairOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRepairOrderView(view))
}

// List accepts ?status=a,b,c to filter by the derived status set.
func (h *RepairOrderHandler) List(c *gin.Context) {
	var statuses []string
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		statuses = strings.Split(raw, ",")
	}

	views, err := h.usecase.ListByStatuses(c.Request.Context(), statuses)
	if err != nil {
		appErr := mapRepairOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRepairOrderViews(views))
}

func mapRepairOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRepairOrderID), errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrEmptyRepairOrder), errors.Is(err, usecase.ErrInvalidAppointmentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRepairOrderNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_ORDER_NOT_FOUND", "Repair order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
