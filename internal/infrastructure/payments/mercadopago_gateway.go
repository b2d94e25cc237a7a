package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidProviderPaymentID        = errors.New("invalid provider payment id")
)

// MercadoPagoGateway reads payments back from Mercado Pago.
//
// In mock mode no call leaves the process: transaction ids containing "rejected" read as
// rejected, ids containing "pending" as in_process, anything else as approved. The request
// reference, amount and currency travel as a query suffix, e.g.
// "mock-1?external_reference=req-1&amount=150000&currency=XOF".
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, transactionID string) (entities.ProviderPayment, error) {
	transactionID = strings.TrimSpace(transactionID)

	if g != nil && g.mockMode {
		pp := mockPayment(transactionID)
		log.Printf("[payment][gateway] mock get provider_payment_id=%s provider_status=%s", pp.ID, pp.Status)
		return pp, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(transactionID)
	if err != nil || id <= 0 {
		log.Printf("[payment][gateway] invalid provider payment id=%q", transactionID)
		return entities.ProviderPayment{}, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, transactionID)
	}
	log.Printf("[payment][gateway] get start provider_payment_id=%d", id)

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return entities.ProviderPayment{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.ProviderPayment{}, err
	}
	log.Printf("[payment][gateway] get success provider_payment_id=%d provider_status=%s status_detail=%s", resp.ID, resp.Status, resp.StatusDetail)

	return entities.ProviderPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		Amount:            resp.TransactionAmount,
		Currency:          resp.CurrencyID,
		ExternalReference: resp.ExternalReference,
		Raw:               raw,
	}, nil
}

func mockPayment(transactionID string) entities.ProviderPayment {
	id, query, _ := strings.Cut(transactionID, "?")
	fields, err := url.ParseQuery(query)
	if err != nil {
		log.Printf("[payment][gateway] mock id query ignored id=%q err=%v", transactionID, err)
		fields = url.Values{}
	}
	amount, _ := strconv.ParseFloat(fields.Get("amount"), 64)

	status, detail := "approved", "accredited"
	switch lower := strings.ToLower(id); {
	case strings.Contains(lower, "rejected"):
		status, detail = "rejected", "cc_rejected_other_reason"
	case strings.Contains(lower, "pending"):
		status, detail = "in_process", "pending_contingency"
	}

	pp := entities.ProviderPayment{
		ID:                id,
		Status:            status,
		StatusDetail:      detail,
		Amount:            amount,
		Currency:          fields.Get("currency"),
		ExternalReference: fields.Get("external_reference"),
	}
	pp.Raw, _ = json.Marshal(map[string]any{
		"id":                 pp.ID,
		"status":             pp.Status,
		"status_detail":      pp.StatusDetail,
		"transaction_amount": pp.Amount,
		"currency_id":        pp.Currency,
		"external_reference": pp.ExternalReference,
	})
	return pp
}
