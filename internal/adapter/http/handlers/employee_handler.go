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

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

func (h *EmployeeHandler) Register(c *gin.Context) {
	var payload request.RegisterEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_EMPLOYEE_INPUT", "Invalid employee payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	employee, err := h.usecase.Register(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEmployee(employee))
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	employee, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployee(employee))
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployees(employees))
}

func mapEmployeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID), errors.Is(err, usecase.ErrInvalidEmployeeArg):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
