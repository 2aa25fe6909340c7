package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func newWorkflowRouter(h *WorkflowHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/appointments/:id/assign-technician", h.AssignTechnician)
	r.POST("/v1/appointments/:id/start-work", h.StartWork)
	r.POST("/v1/appointments/:id/complete-work", h.CompleteWork)
	r.POST("/v1/appointments/:id/unassign-technician", h.UnassignTechnician)
	r.POST("/v1/appointments/:id/cancel", h.Cancel)
	return r
}

func TestWorkflowHandler_AssignTechnician(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/assign-technician", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing technician id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/assign-technician", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("appointment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().AssignTechnician(gomock.Any(), "appt-404", "tech-1").Return(entities.Appointment{}, usecase.ErrAppointmentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-404/assign-technician", bytes.NewBufferString(`{"technician_id":"tech-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("technician at capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().AssignTechnician(gomock.Any(), "appt-1", "tech-busy").Return(entities.Appointment{}, usecase.ErrCapacityExceeded)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/assign-technician", bytes.NewBufferString(`{"technician_id":"tech-busy"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("employee is not a technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().AssignTechnician(gomock.Any(), "appt-1", "emp-front-desk").Return(entities.Appointment{}, usecase.ErrRoleMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/assign-technician", bytes.NewBufferString(`{"technician_id":"emp-front-desk"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().AssignTechnician(gomock.Any(), "appt-1", "tech-1").Return(entities.Appointment{
			ID:                   "appt-1",
			VehicleID:            "veh-1",
			Status:               entities.AppointmentStatusAssigned,
			AssignedTechnicianID: "tech-1",
			AssignedAt:           &now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/assign-technician", bytes.NewBufferString(`{"technician_id":"tech-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "assigned" || body["assigned_technician_id"] != "tech-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestWorkflowHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start work success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().StartWork(gomock.Any(), "appt-1").Return(entities.Appointment{ID: "appt-1", Status: entities.AppointmentStatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/start-work", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("start work from pending conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().StartWork(gomock.Any(), "appt-1").Return(entities.Appointment{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/start-work", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("complete work success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().CompleteWork(gomock.Any(), "appt-1").Return(entities.Appointment{ID: "appt-1", Status: entities.AppointmentStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-1/complete-work", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unassign invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().UnassignTechnician(gomock.Any(), gomock.Any()).Return(entities.Appointment{}, usecase.ErrInvalidAppointmentID)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/%20/unassign-technician", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel terminal appointment conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := newWorkflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "appt-done").Return(entities.Appointment{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/appt-done/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapWorkflowError(t *testing.T) {
	if got := mapWorkflowError(usecase.ErrInvalidAppointmentID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkflowError(usecase.ErrInvalidTechnicianID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkflowError(usecase.ErrAppointmentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWorkflowError(usecase.ErrTechnicianNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWorkflowError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapWorkflowError(usecase.ErrCapacityExceeded); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapWorkflowError(usecase.ErrRoleMismatch); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapWorkflowError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
