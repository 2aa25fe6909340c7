package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_torque/internal/adapter/http/handlers/mocks"
	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTechnicianHandler_Workload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.GET("/v1/technicians/:id/workload", h.Workload)

		uc.EXPECT().Workload(gomock.Any(), "tech-404").Return(usecase.TechnicianWorkload{}, usecase.ErrTechnicianNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians/tech-404/workload", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("non-technician employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.GET("/v1/technicians/:id/workload", h.Workload)

		uc.EXPECT().Workload(gomock.Any(), "emp-front-desk").Return(usecase.TechnicianWorkload{}, usecase.ErrRoleMismatch)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians/emp-front-desk/workload", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.GET("/v1/technicians/:id/workload", h.Workload)

		uc.EXPECT().Workload(gomock.Any(), "tech-1").Return(usecase.TechnicianWorkload{
			Technician:    entities.Employee{ID: "tech-1", Name: "Ana", Role: "technician"},
			WorkloadCount: 2,
			MaxCapacity:   3,
			IsAvailable:   true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians/tech-1/workload", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["technician_id"] != "tech-1" || body["workload_count"] != 2.0 || body["is_available"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestTechnicianHandler_WorkloadReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITechnicianUseCase(ctrl)
	h := NewTechnicianHandler(uc)

	r := gin.New()
	r.GET("/v1/technicians/workload", h.WorkloadReport)

	uc.EXPECT().WorkloadReport(gomock.Any()).Return(
		usecase.WorkloadSummary{TotalTechnicians: 2, AvailableTechnicians: 1, BusyTechnicians: 1},
		[]usecase.TechnicianWorkload{
			{Technician: entities.Employee{ID: "tech-1", Role: "technician"}, WorkloadCount: 3, MaxCapacity: 3},
			{Technician: entities.Employee{ID: "tech-2", Role: "mechanic"}, WorkloadCount: 0, MaxCapacity: 3, IsAvailable: true},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/technicians/workload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	summary, _ := body["summary"].(map[string]any)
	if summary["total_technicians"] != 2.0 || summary["available_technicians"] != 1.0 {
		t.Fatalf("unexpected summary: %s", w.Body.String())
	}
}

func TestTechnicianHandler_Available(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITechnicianUseCase(ctrl)
	h := NewTechnicianHandler(uc)

	r := gin.New()
	r.GET("/v1/technicians/available", h.Available)

	uc.EXPECT().AvailableTechnicians(gomock.Any()).Return([]usecase.TechnicianWorkload{
		{Technician: entities.Employee{ID: "tech-2", Role: "mechanic"}, WorkloadCount: 1, MaxCapacity: 3, IsAvailable: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/technicians/available", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["technician_id"] != "tech-2" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
