package interfaces

import (
	"context"
	"dossier_service/internal/domain/entities"
)

// IPaymentRepository abstracts persistence of payment attempt records.
//
// Settle moves a pending record to a terminal status once; settling a record that is
// already terminal (or missing) returns a zero Payment and no error.
//
//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_mock.go -package=mock_interfaces
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Payment, error)
	Settle(ctx context.Context, id string, status entities.PaymentStatus, transactionID string) (entities.Payment, error)
}
