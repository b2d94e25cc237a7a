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

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

var (
	ErrInvalidTransactionID    = errors.New("invalid transaction id")
	ErrInvalidWidgetResult     = errors.New("invalid widget result")
	ErrRequestAlreadyPaid      = errors.New("request already paid")
	ErrQuotePending            = errors.New("quote pending")
	ErrVerificationUnavailable = errors.New("payment verification unavailable")
	ErrTransactionMismatch     = errors.New("transaction does not belong to request")
	ErrAmountMismatch          = errors.New("transaction amount does not cover request price")
)

// User-facing copy for the payment outcomes. Declined and pending must stay distinguishable.
const (
	MessagePaymentConfirmed = "Paiement confirmé. Merci !"
	MessagePaymentDeclined  = "Le paiement a échoué. Vous pouvez réessayer."
	MessagePaymentPending   = "Votre paiement est en attente de confirmation."
)

const (
	DefaultPaymentCurrency = "XOF"
	DefaultVerifyTimeout   = 20 * time.Second
)

// PaymentSettings configures the payment flow.
type PaymentSettings struct {
	Currency      string
	PublicKey     string
	VerifyTimeout time.Duration
}

// Checkout carries everything the client-side widget needs to open.
type Checkout struct {
	PaymentID       string
	RequestID       string
	RequestKind     entities.RequestKind
	CorrelationID   string
	Amount          float64
	Currency        string
	PayerName       string
	PayerEmail      string
	PayerPhone      string
	PublicKey       string
	RecordPersisted bool
	State           entities.PaymentFlowState
}

// IPaymentUseCase drives a request from payable to paid.
//
//   - Initiate writes a pending payment record (best-effort) and returns widget parameters.
//   - CompleteWidget interprets the widget outcome, verifying successful transactions.
//   - Verify re-checks a transaction with the provider and settles the request. Clients only see their own requests.
//   - HandleNotification reconciles provider notifications server-side.
type IPaymentUseCase interface {
	Initiate(ctx context.Context, actor entities.Actor, kind entities.RequestKind, requestID string) (Checkout, error)
	CompleteWidget(ctx context.Context, actor entities.Actor, kind entities.RequestKind, requestID, paymentID string, res entities.WidgetResult) (entities.PaymentResult, error)
	Verify(ctx context.Context, actor entities.Actor, transactionID, requestID string, kind entities.RequestKind) (entities.Verification, error)
	HandleNotification(ctx context.Context, providerPaymentID string) (entities.Verification, error)
	ListForRequest(ctx context.Context, actor entities.Actor, kind entities.RequestKind, requestID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	requests interfaces.IRequestRepository
	payments interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(requests interfaces.IRequestRepository, payments interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings) *PaymentUseCase {
	if settings.Currency == "" {
		settings.Currency = DefaultPaymentCurrency
	}
	if settings.VerifyTimeout <= 0 {
		settings.VerifyTimeout = DefaultVerifyTimeout
	}
	return &PaymentUseCase{requests: requests, payments: payments, gateway: gateway, settings: settings}
}

func (u *PaymentUseCase) Initiate(ctx context.Context, actor entities.Actor, kind entities.RequestKind, requestID string) (Checkout, error) {
	log.Printf("[payment][usecase] initiate start kind=%s request_id=%s user_id=%s", kind, requestID, actor.UserID)
	req, err := getOwnedRequest(ctx, u.requests, actor, kind, requestID)
	if err != nil {
		log.Printf("[payment][usecase] initiate failed loading request request_id=%s err=%v", requestID, err)
		return Checkout{}, err
	}
	if req.IsPaid() {
		return Checkout{}, ErrRequestAlreadyPaid
	}
	if !req.IsPayable() {
		return Checkout{}, ErrQuotePending
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:            uuid.NewString(),
		RequestID:     req.ID,
		RequestKind:   req.Kind,
		Amount:        req.EstimatedPrice,
		Currency:      u.settings.Currency,
		Status:        entities.PaymentStatusPending,
		CustomerName:  req.ContactName,
		CustomerEmail: req.ContactEmail,
		CustomerPhone: req.ContactPhone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The bookkeeping record never blocks the widget.
	persisted := true
	if _, err := u.payments.Create(ctx, p); err != nil {
		persisted = false
		log.Printf("[payment][usecase] pending record write failed request_id=%s payment_id=%s err=%v", req.ID, p.ID, err)
	}
	log.Printf("[payment][usecase] initiate success request_id=%s payment_id=%s amount=%.2f persisted=%t", req.ID, p.ID, p.Amount, persisted)

	return Checkout{
		PaymentID:       p.ID,
		RequestID:       req.ID,
		RequestKind:     req.Kind,
		CorrelationID:   req.ID,
		Amount:          p.Amount,
		Currency:        p.Currency,
		PayerName:       p.CustomerName,
		PayerEmail:      p.CustomerEmail,
		PayerPhone:      p.CustomerPhone,
		PublicKey:       u.settings.PublicKey,
		RecordPersisted: persisted,
		State:           entities.FlowAwaitingWidget,
	}, nil
}

func (u *PaymentUseCase) CompleteWidget(ctx context.Context, actor entities.Actor, kind entities.RequestKind, requestID, paymentID string, res entities.WidgetResult) (entities.PaymentResult, error) {
	req, err := getOwnedRequest(ctx, u.requests, actor, kind, requestID)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	paymentID = strings.TrimSpace(paymentID)

	switch res.Kind {
	case entities.WidgetClosed:
		log.Printf("[payment][usecase] widget closed request_id=%s payment_id=%s", req.ID, paymentID)
		return entities.PaymentResult{
			State:        entities.FlowUnpaid,
			Outcome:      entities.PaymentOutcomeAbandoned,
			RetryAllowed: true,
		}, nil

	case entities.WidgetFailure:
		log.Printf("[payment][usecase] widget failure request_id=%s payment_id=%s reason=%q", req.ID, paymentID, res.Reason)
		if paymentID != "" {
			u.settle(ctx, req.ID, paymentID, entities.PaymentStatusFailed, "")
		}
		return declinedResult(), nil

	case entities.WidgetSuccess:
		txID := strings.TrimSpace(res.TransactionID)
		if txID == "" {
			return entities.PaymentResult{}, ErrInvalidTransactionID
		}
		v, err := u.verify(ctx, req, txID, paymentID)
		if err != nil {
			if errors.Is(err, ErrVerificationUnavailable) {
				// Widget success stands; the provider notification reconciles the request later.
				log.Printf("[payment][usecase] verification unavailable, trusting widget request_id=%s transaction_id=%s err=%v", req.ID, txID, err)
				return entities.PaymentResult{
					State:      entities.FlowPaid,
					Outcome:    entities.PaymentOutcomeConfirmed,
					Message:    MessagePaymentConfirmed,
					Notify:     true,
					Unverified: true,
				}, nil
			}
			return entities.PaymentResult{}, err
		}
		return resultForVerification(v.Outcome), nil
	}

	return entities.PaymentResult{}, ErrInvalidWidgetResult
}

func (u *PaymentUseCase) Verify(ctx context.Context, actor entities.Actor, transactionID, requestID string, kind entities.RequestKind) (entities.Verification, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.Verification{}, ErrInvalidTransactionID
	}

	req, err := u.requestFor(ctx, actor, kind, requestID)
	if err != nil {
		log.Printf("[payment][usecase] verify failed loading request request_id=%s user_id=%s err=%v", requestID, actor.UserID, err)
		return entities.Verification{}, err
	}
	return u.verify(ctx, req, transactionID, "")
}

func (u *PaymentUseCase) HandleNotification(ctx context.Context, providerPaymentID string) (entities.Verification, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.Verification{}, ErrInvalidTransactionID
	}
	pp, err := u.lookupProvider(ctx, providerPaymentID)
	if err != nil {
		return entities.Verification{}, err
	}

	ref := strings.TrimSpace(pp.ExternalReference)
	if ref == "" {
		log.Printf("[payment][usecase] notification without external reference provider_payment_id=%s", providerPaymentID)
		return entities.Verification{}, ErrRequestNotFound
	}

	var req entities.Request
	for _, kind := range entities.RequestKinds {
		r, err := u.requests.GetByID(ctx, kind, ref)
		if err != nil {
			return entities.Verification{}, err
		}
		if r.ID != "" {
			req = r
			break
		}
	}
	if req.ID == "" {
		log.Printf("[payment][usecase] notification for unknown request provider_payment_id=%s ref=%s", providerPaymentID, ref)
		return entities.Verification{}, ErrRequestNotFound
	}

	return u.reconcile(ctx, req, pp, "")
}

func (u *PaymentUseCase) ListForRequest(ctx context.Context, actor entities.Actor, kind entities.RequestKind, requestID string) ([]entities.Payment, error) {
	req, err := u.requestFor(ctx, actor, kind, requestID)
	if err != nil {
		return nil, err
	}
	return u.payments.ListByRequestID(ctx, req.ID)
}

// requestFor loads any request for staff and only owned requests for everyone else.
func (u *PaymentUseCase) requestFor(ctx context.Context, actor entities.Actor, kind entities.RequestKind, requestID string) (entities.Request, error) {
	if !actor.IsStaff() {
		return getOwnedRequest(ctx, u.requests, actor, kind, requestID)
	}
	kind, requestID, err := validateRequestRef(kind, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	req, err := u.requests.GetByID(ctx, kind, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if req.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return req, nil
}

func (u *PaymentUseCase) verify(ctx context.Context, req entities.Request, transactionID, paymentID string) (entities.Verification, error) {
	if req.IsPaid() {
		log.Printf("[payment][usecase] verify on paid request request_id=%s transaction_id=%s", req.ID, transactionID)
		return entities.Verification{
			Outcome:        entities.VerificationConfirmed,
			TransactionID:  transactionID,
			RequestID:      req.ID,
			RequestKind:    req.Kind,
			ProviderStatus: req.PaymentStatus,
		}, nil
	}

	pp, err := u.lookupProvider(ctx, transactionID)
	if err != nil {
		return entities.Verification{}, err
	}
	return u.reconcile(ctx, req, pp, paymentID)
}

func (u *PaymentUseCase) lookupProvider(ctx context.Context, transactionID string) (entities.ProviderPayment, error) {
	if u.gateway == nil {
		return entities.ProviderPayment{}, fmt.Errorf("%w: payment gateway not configured", ErrVerificationUnavailable)
	}
	ctx, cancel := context.WithTimeout(ctx, u.settings.VerifyTimeout)
	defer cancel()

	pp, err := u.gateway.GetPayment(ctx, transactionID)
	if err != nil {
		log.Printf("[payment][usecase] provider lookup failed transaction_id=%s err=%v", transactionID, err)
		return entities.ProviderPayment{}, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	}
	if pp.ID == "" {
		pp.ID = transactionID
	}
	return pp, nil
}

func (u *PaymentUseCase) reconcile(ctx context.Context, req entities.Request, pp entities.ProviderPayment, paymentID string) (entities.Verification, error) {
	if ref := strings.TrimSpace(pp.ExternalReference); ref != req.ID {
		log.Printf("[payment][usecase] transaction reference mismatch request_id=%s transaction_id=%s ref=%q", req.ID, pp.ID, ref)
		return entities.Verification{}, ErrTransactionMismatch
	}

	v := entities.Verification{
		Outcome:        entities.ClassifyProviderStatus(pp.Status),
		TransactionID:  pp.ID,
		RequestID:      req.ID,
		RequestKind:    req.Kind,
		ProviderStatus: pp.Status,
		Provider:       &pp,
	}

	switch v.Outcome {
	case entities.VerificationConfirmed:
		if err := u.checkAmount(req, pp); err != nil {
			return entities.Verification{}, err
		}
		if !req.IsPaid() {
			updated, err := u.requests.UpdatePaymentStatus(ctx, req.Kind, req.ID, entities.PaymentStatusApproved)
			if err != nil {
				log.Printf("[payment][usecase] request payment status update failed request_id=%s err=%v", req.ID, err)
				return entities.Verification{}, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
			}
			if updated.ID == "" {
				return entities.Verification{}, ErrRequestNotFound
			}
		}
		u.settle(ctx, req.ID, paymentID, entities.PaymentStatusApproved, pp.ID)
	case entities.VerificationDeclined:
		u.settle(ctx, req.ID, paymentID, entities.PaymentStatusFailed, pp.ID)
	}

	log.Printf("[payment][usecase] reconciled request_id=%s transaction_id=%s provider_status=%s outcome=%s", req.ID, pp.ID, pp.Status, v.Outcome)
	return v, nil
}

// checkAmount rejects an approved transaction that does not cover the quoted price in the
// configured currency, as reported by the provider.
func (u *PaymentUseCase) checkAmount(req entities.Request, pp entities.ProviderPayment) error {
	if !strings.EqualFold(strings.TrimSpace(pp.Currency), u.settings.Currency) || pp.Amount < req.EstimatedPrice {
		log.Printf("[payment][usecase] amount mismatch request_id=%s transaction_id=%s paid=%.2f %s expected=%.2f %s",
			req.ID, pp.ID, pp.Amount, pp.Currency, req.EstimatedPrice, u.settings.Currency)
		return ErrAmountMismatch
	}
	return nil
}

// settle closes a pending payment record. Bookkeeping only: failures are logged, never returned.
// Without a payment id, the newest pending record of the request is used unless a record
// already carries the transaction.
func (u *PaymentUseCase) settle(ctx context.Context, requestID, paymentID string, status entities.PaymentStatus, transactionID string) {
	if u.payments == nil {
		return
	}

	if paymentID != "" {
		p, err := u.payments.GetByID(ctx, paymentID)
		if err != nil {
			log.Printf("[payment][usecase] settle lookup failed payment_id=%s err=%v", paymentID, err)
			return
		}
		if p.ID == "" || p.RequestID != requestID {
			log.Printf("[payment][usecase] settle skipped, unknown payment payment_id=%s request_id=%s", paymentID, requestID)
			return
		}
	} else {
		records, err := u.payments.ListByRequestID(ctx, requestID)
		if err != nil {
			log.Printf("[payment][usecase] settle listing failed request_id=%s err=%v", requestID, err)
			return
		}
		paymentID = pendingRecordFor(records, transactionID)
		if paymentID == "" {
			log.Printf("[payment][usecase] settle skipped, no pending record request_id=%s transaction_id=%s", requestID, transactionID)
			return
		}
	}

	if _, err := u.payments.Settle(ctx, paymentID, status, transactionID); err != nil {
		log.Printf("[payment][usecase] settle failed payment_id=%s status=%s err=%v", paymentID, status, err)
	}
}

func pendingRecordFor(records []entities.Payment, transactionID string) string {
	var latest *entities.Payment
	for i := range records {
		p := &records[i]
		if transactionID != "" && p.TransactionID == transactionID {
			return ""
		}
		if p.Status != entities.PaymentStatusPending {
			continue
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	if latest == nil {
		return ""
	}
	return latest.ID
}

func declinedResult() entities.PaymentResult {
	return entities.PaymentResult{
		State:        entities.FlowUnpaid,
		Outcome:      entities.PaymentOutcomeDeclined,
		Message:      MessagePaymentDeclined,
		Notify:       true,
		RetryAllowed: true,
	}
}

func resultForVerification(outcome entities.VerificationOutcome) entities.PaymentResult {
	switch outcome {
	case entities.VerificationConfirmed:
		return entities.PaymentResult{
			State:   entities.FlowPaid,
			Outcome: entities.PaymentOutcomeConfirmed,
			Message: MessagePaymentConfirmed,
			Notify:  true,
		}
	case entities.VerificationDeclined:
		return declinedResult()
	default:
		return entities.PaymentResult{
			State:        entities.FlowUnpaid,
			Outcome:      entities.PaymentOutcomePending,
			Message:      MessagePaymentPending,
			Notify:       true,
			RetryAllowed: true,
		}
	}
}
