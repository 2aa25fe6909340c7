package handlers

import (
	"bytes"
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

func TestRepairOrderHandler_Open(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairOrderUseCase(ctrl)
		h := NewRepairOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/repair-orders", h.Open)

		req := httptest.NewRequest(http.MethodPost, "/v1/repair-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairOrderUseCase(ctrl)
		h := NewRepairOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/repair-orders", h.Open)

		req := httptest.NewRequest(http.MethodPost, "/v1/repair-orders", bytes.NewBufferString(`{"vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairOrderUseCase(ctrl)
		h := NewRepairOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/repair-orders", h.Open)

		uc.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, order entities.RepairOrder) (usecase.RepairOrderView, error) {
			if order.VehicleID != "veh-1" || len(order.Services) != 1 || len(order.Parts) != 1 {
				t.Fatalf("unexpected order passed to usecase: %+v", order)
			}
			order.ID = "ro-1"
			order.TotalCost = 150
			return usecase.RepairOrderView{RepairOrder: order, Status: entities.AppointmentStatusPending}, nil
		})

		payload := `{"vehicle_id":"veh-1","services":[{"name":"brake job","labor_cost":100}],"parts":[{"name":"brake pads","unit_price":25,"quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/repair-orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ro-1" || body["status"] != "pending" || body["total_cost"] != 150.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRepairOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairOrderUseCase(ctrl)
		h := NewRepairOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/repair-orders/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "ro-404").Return(usecase.RepairOrderView{}, usecase.ErrRepairOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/repair-orders/ro-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("derived status in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairOrderUseCase(ctrl)
		h := NewRepairOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/repair-orders/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "ro-1").Return(usecase.RepairOrderView{
			RepairOrder: entities.RepairOrder{ID: "ro-1", VehicleID: "veh-1", TotalCost: 250},
			Status:      entities.AppointmentStatusInProgress,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/repair-orders/ro-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "in_progress" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRepairOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status set forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairOrderUseCase(ctrl)
		h := NewRepairOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/repair-orders", h.List)

		uc.EXPECT().ListByStatuses(gomock.Any(), []string{"pending", "assigned"}).Return([]usecase.RepairOrderView{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/repair-orders?status=pending,assigned", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no filter lists all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairOrderUseCase(ctrl)
		h := NewRepairOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/repair-orders", h.List)

		uc.EXPECT().ListByStatuses(gomock.Any(), gomock.Nil()).Return([]usecase.RepairOrderView{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/repair-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairOrderUseCase(ctrl)
		h := NewRepairOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/repair-orders", h.List)

		uc.EXPECT().ListByStatuses(gomock.Any(), []string{"torn-down"}).Return(nil, usecase.ErrInvalidAppointmentStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/repair-orders?status=torn-down", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
