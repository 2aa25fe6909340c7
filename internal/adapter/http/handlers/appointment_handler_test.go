package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_torque/internal/adapter/http/handlers/mocks"
	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAppointmentHandler_Book(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.Book)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing scheduled date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.Book)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(`{"vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.Book)

		uc.EXPECT().Book(gomock.Any(), "veh-404", "oil change", gomock.Any()).Return(entities.Appointment{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(`{"vehicle_id":"veh-404","description":"oil change","scheduled_date":"2026-09-01T10:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments", h.Book)

		scheduled := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().Book(gomock.Any(), "veh-1", "oil change", scheduled).Return(entities.Appointment{
			ID:            "appt-1",
			VehicleID:     "veh-1",
			CustomerID:    "cust-1",
			Description:   "oil change",
			ScheduledDate: scheduled,
			Status:        entities.AppointmentStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(`{"vehicle_id":"veh-1","description":"oil change","scheduled_date":"2026-09-01T10:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "appt-1" || body["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAppointmentHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.GET("/v1/appointments", h.List)

		uc.EXPECT().List(gomock.Any(), "", "torn-down").Return(nil, usecase.ErrInvalidAppointmentStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/appointments?status=torn-down", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.GET("/v1/appointments", h.List)

		uc.EXPECT().List(gomock.Any(), "veh-1", "pending").Return([]entities.Appointment{
			{ID: "appt-1", VehicleID: "veh-1", Status: entities.AppointmentStatusPending},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/appointments?vehicle_id=veh-1&status=pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "appt-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAppointmentHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.GET("/v1/appointments/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "appt-404").Return(entities.Appointment{}, usecase.ErrAppointmentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/appointments/appt-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.GET("/v1/appointments/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "appt-1").Return(entities.Appointment{ID: "appt-1", Status: entities.AppointmentStatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/appointments/appt-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
