package handlers

import (
	"errors"
	"net/http"

	request "oficina_torque/internal/adapter/http/dto/request"
	response "oficina_torque/internal/adapter/http/dto/response"
	"oficina_torque/internal/usecase"
	"oficina_torque/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
)

// AppointmentHandler handles appointment booking and reads. Workflow
// transitions live in WorkflowHandler.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	var payload request.BookAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	appointment, err := h.usecase.Book(c.Request.Context(), payload.ResolveVehicleID(), payload.Description, payload.ScheduledDate)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(appointment))
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	appointment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

// List filters by vehicle_id and status query params; both optional.
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.usecase.List(c.Request.Context(), c.Query("vehicle_id"), c.Query("status"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointments(appointments))
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrInvalidScheduledDate), errors.Is(err, usecase.ErrInvalidAppointmentStatus), errors.Is(err, usecase.ErrInvalidAppointmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
