package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "oficina_torque/internal/adapter/http/dto/request"
	response "oficina_torque/internal/adapter/http/dto/response"
	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase"
	"oficina_torque/pkg"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler drives appointment status transitions. Every endpoint takes
// the appointment id in the path; assignment additionally takes the technician
// in the body.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

func (h *WorkflowHandler) AssignTechnician(c *gin.Context) {
	appointmentID := c.Param("id")

	var payload request.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	technicianID := payload.ResolveTechnicianID()
	log.Printf("[workflow][handler] assign start appointment_id=%s technician_id=%s", appointmentID, technicianID)

	appointment, err := h.usecase.AssignTechnician(c.Request.Context(), appointmentID, technicianID)
	if err != nil {
		log.Printf("[workflow][handler] assign failed appointment_id=%s technician_id=%s err=%v", appointmentID, technicianID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] assign success appointment_id=%s technician_id=%s status=%s", appointmentID, technicianID, appointment.Status)

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

func (h *WorkflowHandler) StartWork(c *gin.Context) {
	h.transition(c, "start", h.usecase.StartWork)
}

func (h *WorkflowHandler) CompleteWork(c *gin.Context) {
	h.transition(c, "complete", h.usecase.CompleteWork)
}

func (h *WorkflowHandler) UnassignTechnician(c *gin.Context) {
	h.transition(c, "unassign", h.usecase.UnassignTechnician)
}

func (h *WorkflowHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel", h.usecase.Cancel)
}

func (h *WorkflowHandler) transition(c *gin.Context, name string, apply func(ctx context.Context, appointmentID string) (entities.Appointment, error)) {
	appointmentID := c.Param("id")
	log.Printf("[workflow][handler] %s start appointment_id=%s", name, appointmentID)

	appointment, err := apply(c.Request.Context(), appointmentID)
	if err != nil {
		log.Printf("[workflow][handler] %s failed appointment_id=%s err=%v", name, appointmentID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] %s success appointment_id=%s status=%s", name, appointmentID, appointment.Status)

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID), errors.Is(err, usecase.ErrInvalidTechnicianID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Appointment status does not allow this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrCapacityExceeded):
		return pkg.NewDomainErrorSimple("TECHNICIAN_AT_CAPACITY", "Technician already has the maximum number of concurrent jobs", http.StatusConflict)
	case errors.Is(err, usecase.ErrRoleMismatch):
		return pkg.NewDomainErrorSimple("ROLE_MISMATCH", "Employee is not a technician", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
