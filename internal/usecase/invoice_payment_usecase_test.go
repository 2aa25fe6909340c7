package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"oficina_torque/internal/domain/entities"
	mock_interfaces "oficina_torque/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func paymentOrdersFixture(ctrl *gomock.Controller, status entities.AppointmentStatus) IRepairOrderUseCase {
	orders := mock_interfaces.NewMockIRepairOrderRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	orders.EXPECT().GetByID(gomock.Any(), "ro-1").Return(entities.RepairOrder{
		ID:        "ro-1",
		VehicleID: "veh-1",
		TotalCost: 250,
	}, nil)
	appointments.EXPECT().ListByVehicleID(gomock.Any(), "veh-1").Return([]entities.Appointment{
		{ID: "apt-1", ScheduledDate: time.Now(), Status: status},
	}, nil)
	return NewRepairOrderUseCase(orders, appointments, nil)
}

func TestInvoicePaymentUseCase_CreateAndApprove(t *testing.T) {
	t.Run("empty repair order id", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidRepairOrderID) {
			t.Fatalf("expected ErrInvalidRepairOrderID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "ro-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "ro-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("order work not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, paymentOrdersFixture(ctrl, entities.AppointmentStatusInProgress), gateway)

		_, err := uc.CreateAndApprove(context.Background(), "ro-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrOrderNotCompleted) {
			t.Fatalf("expected ErrOrderNotCompleted, got %v", err)
		}
	})

	t.Run("charges completed order with enriched payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, paymentOrdersFixture(ctrl, entities.AppointmentStatusCompleted), gateway)

		gateway.EXPECT().ChargeRepairOrder(gomock.Any(), "ro-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["external_reference"] != "ro-1" {
					t.Fatalf("expected external_reference ro-1, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 250.0 {
					t.Fatalf("expected amount from priced order, got %v", m["transaction_amount"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InvoicePayment{})).DoAndReturn(
			func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
				if p.ID != "mp-123" || p.RepairOrderID != "ro-1" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		got, err := uc.CreateAndApprove(context.Background(), "ro-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "mp-123" {
			t.Fatalf("expected provider payment id, got %q", got.ID)
		}
	})

	t.Run("gateway error propagates without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, paymentOrdersFixture(ctrl, entities.AppointmentStatusCompleted), gateway)

		gateway.EXPECT().ChargeRepairOrder(gomock.Any(), "ro-1", gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.CreateAndApprove(context.Background(), "ro-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		uc := NewInvoicePaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.InvoicePayment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrInvoicePaymentNotFound) {
			t.Fatalf("expected ErrInvoicePaymentNotFound, got %v", err)
		}
	})
}
