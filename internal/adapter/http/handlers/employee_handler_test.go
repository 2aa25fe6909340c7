package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oficina_torque/internal/adapter/http/handlers/mocks"
	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEmployeeHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)

		r := gin.New()
		r.POST("/v1/employees", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/employees", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)

		r := gin.New()
		r.POST("/v1/employees", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/employees", strings.NewReader(`{"name":"Ana"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("registered technician can be assigned work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)

		r := gin.New()
		r.POST("/v1/employees", h.Register)

		uc.EXPECT().Register(gomock.Any(), entities.Employee{
			Name: "Ana",
			Role: "Senior Technician",
		}).Return(entities.Employee{
			ID:   "emp-1",
			Name: "Ana",
			Role: "Senior Technician",
		}, nil)

		body := `{"name":"Ana","role":"Senior Technician"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/employees", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["id"] != "emp-1" || got["role"] != "Senior Technician" {
			t.Fatalf("unexpected body: %v", got)
		}
		if got["is_technician"] != true {
			t.Fatalf("expected is_technician=true, got %v", got["is_technician"])
		}
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)

		r := gin.New()
		r.GET("/v1/employees/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "emp-404").Return(entities.Employee{}, usecase.ErrEmployeeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/employees/emp-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mixed roster flags technicians", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)

		r := gin.New()
		r.GET("/v1/employees", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Employee{
			{ID: "emp-1", Name: "Ana", Role: "mechanic"},
			{ID: "emp-2", Name: "Rui", Role: "receptionist"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/employees", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 employees, got %d", len(got))
		}
		if got[0]["is_technician"] != true || got[1]["is_technician"] != false {
			t.Fatalf("unexpected technician flags: %v", got)
		}
	})
}
