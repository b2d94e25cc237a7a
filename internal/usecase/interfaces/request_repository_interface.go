package interfaces

import (
	"context"
	"dossier_service/internal/domain/entities"
)

// IRequestRepository abstracts the Persistence Gateway for requests.
//
// Reads return a zero Request (empty ID) when the row does not exist; updates do the same
// when the target row is missing.
//
//go:generate mockgen -source=request_repository_interface.go -destination=mocks/request_repository_mock.go -package=mock_interfaces
type IRequestRepository interface {
	Create(ctx context.Context, r entities.Request) (entities.Request, error)
	GetByID(ctx context.Context, kind entities.RequestKind, id string) (entities.Request, error)
	ListByPhone(ctx context.Context, kind entities.RequestKind, phone string) ([]entities.Request, error)
	ListByUserID(ctx context.Context, kind entities.RequestKind, userID string) ([]entities.Request, error)
	List(ctx context.Context, kind entities.RequestKind) ([]entities.Request, error)
	UpdateStatus(ctx context.Context, kind entities.RequestKind, id string, status entities.LifecycleStatus) (entities.Request, error)
	UpdateEstimatedPrice(ctx context.Context, kind entities.RequestKind, id string, price float64) (entities.Request, error)
	UpdatePaymentStatus(ctx context.Context, kind entities.RequestKind, id string, status entities.PaymentStatus) (entities.Request, error)
}
