package handlers

import (
	"errors"
	"net/http"

	response "oficina_torque/internal/adapter/http/dto/response"
	"oficina_torque/internal/usecase"
	"oficina_torque/pkg"

	"github.com/gin-gonic/gin"
)

// TechnicianHandler exposes roster reads: per-technician workload, the fleet
// report and the availability list.

type TechnicianHandler struct {
	usecase usecase.ITechnicianUseCase
}

func NewTechnicianHandler(uc usecase.ITechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{usecase: uc}
}

func (h *TechnicianHandler) Workload(c *gin.Context) {
	workload, err := h.usecase.Workload(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnicianWorkload(workload))
}

func (h *TechnicianHandler) WorkloadReport(c *gin.Context) {
	summary, workloads, err := h.usecase.WorkloadReport(c.Request.Context())
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkloadReport(summary, workloads))
}

func (h *TechnicianHandler) Available(c *gin.Context) {
	workloads, err := h.usecase.AvailableTechnicians(c.Request.Context())
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.TechnicianWorkloadResponse, 0, len(workloads))
	for _, w := range workloads {
		out = append(out, response.FromTechnicianWorkload(w))
	}
	c.JSON(http.StatusOK, out)
}

func mapTechnicianError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoleMismatch):
		return pkg.NewDomainErrorSimple("ROLE_MISMATCH", "Employee is not a technician", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
