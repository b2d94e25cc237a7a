package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=request_usecase.go -destination=../adapter/http/handlers/mocks/request_usecase_mock.go -package=mocks

var (
	ErrRequestNotFound        = errors.New("request not found")
	ErrInvalidRequestID       = errors.New("invalid request id")
	ErrInvalidRequestKind     = errors.New("invalid request kind")
	ErrInvalidRequestInput    = errors.New("invalid request input")
	ErrInvalidLifecycleStatus = errors.New("invalid lifecycle status")
	ErrInvalidEstimatedPrice  = errors.New("invalid estimated price")
	ErrUnauthenticated        = errors.New("unauthenticated")
	ErrForbidden              = errors.New("forbidden")
)

// SubmitRequestInput carries the client-provided fields of a new request.
type SubmitRequestInput struct {
	ContactName    string
	ContactPhone   string
	ContactEmail   string
	CompanyName    string
	LegalForm      string
	ServiceType    string
	Description    string
	EstimatedPrice float64
}

// IRequestUseCase exposes request operations for clients and back-office staff.
//
// Lifecycle transitions are not guarded: staff can set any known status.
type IRequestUseCase interface {
	Submit(ctx context.Context, actor entities.Actor, kind entities.RequestKind, in SubmitRequestInput) (entities.Request, error)
	GetForOwner(ctx context.Context, actor entities.Actor, kind entities.RequestKind, id string) (entities.Request, error)
	ListForOwner(ctx context.Context, actor entities.Actor) ([]entities.Request, error)
	ListAll(ctx context.Context, actor entities.Actor, kind entities.RequestKind) ([]entities.Request, error)
	UpdateLifecycleStatus(ctx context.Context, actor entities.Actor, kind entities.RequestKind, id string, status entities.LifecycleStatus) (entities.Request, error)
	UpdateEstimatedPrice(ctx context.Context, actor entities.Actor, kind entities.RequestKind, id string, price float64) (entities.Request, error)
}

type RequestUseCase struct {
	repo interfaces.IRequestRepository
	now  func() time.Time
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(repo interfaces.IRequestRepository) *RequestUseCase {
	return &RequestUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *RequestUseCase) Submit(ctx context.Context, actor entities.Actor, kind entities.RequestKind, in SubmitRequestInput) (entities.Request, error) {
	if !actor.Authenticated() {
		return entities.Request{}, ErrUnauthenticated
	}
	kind, ok := entities.ParseRequestKind(string(kind))
	if !ok {
		return entities.Request{}, ErrInvalidRequestKind
	}
	in.ContactName = strings.TrimSpace(in.ContactName)
	if in.ContactName == "" || !entities.ValidPhone(in.ContactPhone) {
		return entities.Request{}, ErrInvalidRequestInput
	}
	if kind == entities.RequestKindCompany && strings.TrimSpace(in.CompanyName) == "" {
		return entities.Request{}, ErrInvalidRequestInput
	}
	if kind == entities.RequestKindService && strings.TrimSpace(in.ServiceType) == "" {
		return entities.Request{}, ErrInvalidRequestInput
	}
	if in.EstimatedPrice < 0 {
		return entities.Request{}, ErrInvalidEstimatedPrice
	}
	// Only staff quote prices.
	if !actor.IsStaff() && in.EstimatedPrice > 0 {
		log.Printf("[request][usecase] client price ignored kind=%s user_id=%s price=%.2f", kind, actor.UserID, in.EstimatedPrice)
		in.EstimatedPrice = 0
	}

	now := u.now()
	r := entities.Request{
		ID:             uuid.NewString(),
		Kind:           kind,
		TrackingNumber: newTrackingNumber(kind, now),
		UserID:         actor.UserID,
		ContactName:    in.ContactName,
		ContactPhone:   entities.NormalizePhone(in.ContactPhone),
		ContactEmail:   strings.TrimSpace(in.ContactEmail),
		CompanyName:    strings.TrimSpace(in.CompanyName),
		LegalForm:      strings.TrimSpace(in.LegalForm),
		ServiceType:    strings.TrimSpace(in.ServiceType),
		Description:    strings.TrimSpace(in.Description),
		Status:         entities.LifecycleStatusPending,
		PaymentStatus:  string(entities.PaymentStatusPending),
		EstimatedPrice: in.EstimatedPrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[request][usecase] create failed kind=%s user_id=%s err=%v", kind, actor.UserID, err)
		return entities.Request{}, err
	}
	log.Printf("[request][usecase] created kind=%s id=%s tracking_number=%s", kind, created.ID, created.TrackingNumber)
	return created, nil
}

// GetForOwner loads a request scoped to its owner. A request owned by someone else reads as not found.
func (u *RequestUseCase) GetForOwner(ctx context.Context, actor entities.Actor, kind entities.RequestKind, id string) (entities.Request, error) {
	return getOwnedRequest(ctx, u.repo, actor, kind, id)
}

func (u *RequestUseCase) ListForOwner(ctx context.Context, actor entities.Actor) ([]entities.Request, error) {
	if !actor.Authenticated() {
		return nil, ErrUnauthenticated
	}
	out := make([]entities.Request, 0)
	for _, kind := range entities.RequestKinds {
		rows, err := u.repo.ListByUserID(ctx, kind, actor.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}

func (u *RequestUseCase) ListAll(ctx context.Context, actor entities.Actor, kind entities.RequestKind) ([]entities.Request, error) {
	if !actor.IsStaff() {
		return nil, ErrForbidden
	}
	kind, ok := entities.ParseRequestKind(string(kind))
	if !ok {
		return nil, ErrInvalidRequestKind
	}
	return u.repo.List(ctx, kind)
}

func (u *RequestUseCase) UpdateLifecycleStatus(ctx context.Context, actor entities.Actor, kind entities.RequestKind, id string, status entities.LifecycleStatus) (entities.Request, error) {
	if !actor.IsStaff() {
		return entities.Request{}, ErrForbidden
	}
	if !status.Valid() {
		return entities.Request{}, ErrInvalidLifecycleStatus
	}
	kind, id, err := validateRequestRef(kind, id)
	if err != nil {
		return entities.Request{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, kind, id, status)
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	log.Printf("[request][usecase] status updated kind=%s id=%s status=%s by=%s", kind, id, status, actor.UserID)
	return updated, nil
}

func (u *RequestUseCase) UpdateEstimatedPrice(ctx context.Context, actor entities.Actor, kind entities.RequestKind, id string, price float64) (entities.Request, error) {
	if !actor.IsStaff() {
		return entities.Request{}, ErrForbidden
	}
	if price < 0 {
		return entities.Request{}, ErrInvalidEstimatedPrice
	}
	kind, id, err := validateRequestRef(kind, id)
	if err != nil {
		return entities.Request{}, err
	}

	updated, err := u.repo.UpdateEstimatedPrice(ctx, kind, id, price)
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	log.Printf("[request][usecase] price updated kind=%s id=%s price=%.2f by=%s", kind, id, price, actor.UserID)
	return updated, nil
}

func validateRequestRef(kind entities.RequestKind, id string) (entities.RequestKind, string, error) {
	k, ok := entities.ParseRequestKind(string(kind))
	if !ok {
		return "", "", ErrInvalidRequestKind
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "", ErrInvalidRequestID
	}
	return k, id, nil
}

// getOwnedRequest is the ownership check shared by request reads and the payment flow.
func getOwnedRequest(ctx context.Context, repo interfaces.IRequestRepository, actor entities.Actor, kind entities.RequestKind, id string) (entities.Request, error) {
	if !actor.Authenticated() {
		return entities.Request{}, ErrUnauthenticated
	}
	kind, id, err := validateRequestRef(kind, id)
	if err != nil {
		return entities.Request{}, err
	}

	r, err := repo.GetByID(ctx, kind, id)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" || r.UserID != actor.UserID {
		return entities.Request{}, ErrRequestNotFound
	}
	return r, nil
}

func newTrackingNumber(kind entities.RequestKind, now time.Time) string {
	prefix := "SRV"
	if kind == entities.RequestKindCompany {
		prefix = "ENT"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), suffix)
}
