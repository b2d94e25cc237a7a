package interfaces

import (
	"context"
	"dossier_service/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// The service never charges through it: the client-side widget does. The gateway is only
// used to re-check a transaction authoritatively.
//
//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces
type IPaymentGateway interface {
	GetPayment(ctx context.Context, transactionID string) (entities.ProviderPayment, error)
}
