package interfaces

import (
	"context"

	"oficina_torque/internal/domain/entities"
)

//go:generate mockgen -source=invoice_payment_repository_interface.go -destination=mocks/invoice_payment_repository_mock.go -package=mock_interfaces

// IInvoicePaymentRepository abstracts DynamoDB persistence for InvoicePayment.

type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByRepairOrderID(ctx context.Context, repairOrderID string) ([]entities.InvoicePayment, error)
}
