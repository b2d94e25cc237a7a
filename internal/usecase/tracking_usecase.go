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
)

//go:generate mockgen -source=tracking_usecase.go -destination=../adapter/http/handlers/mocks/tracking_usecase_mock.go -package=mocks

var (
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrTrackingRateLimited = errors.New("tracking rate limit exceeded")
	ErrTrackingUnavailable = errors.New("tracking lookup unavailable")
)

const DefaultTrackingTimeout = 20 * time.Second

// TrackedRequest is the public summary of a request returned by the phone lookup.
//
// It omits the owner and contact email.
type TrackedRequest struct {
	ID             string
	Kind           entities.RequestKind
	TrackingNumber string
	ContactName    string
	Title          string
	Status         string
	PaymentStatus  string
	EstimatedPrice float64
	CreatedAt      time.Time
	View           entities.StatusView
}

// TrackingResult holds the merged lookup result. Found is false for an empty result,
// which is not an error.
type TrackingResult struct {
	Found    bool
	Requests []TrackedRequest
}

// ITrackingUseCase resolves the requests attached to a phone number for anonymous visitors.
type ITrackingUseCase interface {
	LookupByPhone(ctx context.Context, callerKey, phone string) (TrackingResult, error)
}

type TrackingUseCase struct {
	repo    interfaces.IRequestRepository
	limiter interfaces.IRateLimiter
	timeout time.Duration
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(repo interfaces.IRequestRepository, limiter interfaces.IRateLimiter, timeout time.Duration) *TrackingUseCase {
	if timeout <= 0 {
		timeout = DefaultTrackingTimeout
	}
	return &TrackingUseCase{repo: repo, limiter: limiter, timeout: timeout}
}

func (u *TrackingUseCase) LookupByPhone(ctx context.Context, callerKey, phone string) (TrackingResult, error) {
	if !entities.ValidPhone(phone) {
		log.Printf("[tracking][usecase] invalid phone caller=%s", callerKey)
		return TrackingResult{}, ErrInvalidPhone
	}
	phone = entities.NormalizePhone(phone)

	// The limiter shares the lookup deadline.
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	if u.limiter != nil {
		allowed, err := u.limiter.Allow(ctx, callerKey)
		if err != nil {
			// Fail open on counter store errors.
			log.Printf("[tracking][usecase] rate limiter failed caller=%s err=%v", callerKey, err)
		} else if !allowed {
			log.Printf("[tracking][usecase] rate limited caller=%s", callerKey)
			return TrackingResult{}, ErrTrackingRateLimited
		}
	}

	result := TrackingResult{Requests: []TrackedRequest{}}
	for _, kind := range entities.RequestKinds {
		rows, err := u.repo.ListByPhone(ctx, kind, phone)
		if err != nil {
			log.Printf("[tracking][usecase] lookup failed kind=%s caller=%s err=%v", kind, callerKey, err)
			return TrackingResult{}, fmt.Errorf("%w: %v", ErrTrackingUnavailable, err)
		}
		for _, r := range rows {
			result.Requests = append(result.Requests, toTrackedRequest(r))
		}
	}
	result.Found = len(result.Requests) > 0
	log.Printf("[tracking][usecase] lookup done caller=%s matches=%d", callerKey, len(result.Requests))

	return result, nil
}

func toTrackedRequest(r entities.Request) TrackedRequest {
	return TrackedRequest{
		ID:             r.ID,
		Kind:           r.Kind,
		TrackingNumber: r.TrackingNumber,
		ContactName:    r.ContactName,
		Title:          requestTitle(r),
		Status:         string(r.Status),
		PaymentStatus:  r.PaymentStatus,
		EstimatedPrice: r.EstimatedPrice,
		CreatedAt:      r.CreatedAt,
		View:           r.StatusView(),
	}
}

func requestTitle(r entities.Request) string {
	switch r.Kind {
	case entities.RequestKindCompany:
		if name := strings.TrimSpace(r.CompanyName); name != "" {
			return name
		}
		return "Création d'entreprise"
	default:
		if st := strings.TrimSpace(r.ServiceType); st != "" {
			return st
		}
		return "Demande de service"
	}
}
