package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	appconfig "estudio_admin/internal/infrastructure/config"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates deposit charges (PIX/card) through the
// Mercado Pago payments API. In mock mode every charge is approved locally.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig) (*MercadoPagoGateway, error) {
	if cfg.MockEnabled() {
		log.Info().Str("component", "payment-gateway").Msg("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if cfg.MercadoPagoAccessToken == "" {
		log.Warn().Str("component", "payment-gateway").Msg("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Error().Err(err).Str("component", "payment-gateway").Msg("failed creating sdk config")
		return nil, err
	}
	log.Info().Str("component", "payment-gateway").Bool("sandbox", cfg.Sandbox()).Msg("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	logger := log.With().Str("component", "payment-gateway").Logger()
	if g != nil && g.mockMode {
		logger.Info().Int("payload_len", len(requestPayload)).Msg("mock create start")

		resp := map[string]any{}
		if len(requestPayload) > 0 && json.Valid(requestPayload) {
			if err := json.Unmarshal(requestPayload, &resp); err != nil {
				resp = map[string]any{"request_payload_raw": string(requestPayload)}
			}
		}

		ts := g.now().UTC()
		id := strconv.FormatInt(ts.UnixNano(), 10)
		now := ts.Format(time.RFC3339Nano)
		resp["id"] = id
		resp["status"] = "approved"
		resp["status_detail"] = "accredited"
		if _, ok := resp["date_created"]; !ok {
			resp["date_created"] = now
		}
		if _, ok := resp["date_approved"]; !ok {
			resp["date_approved"] = now
		}

		b, err := json.Marshal(resp)
		if err != nil {
			logger.Error().Err(err).Msg("mock response marshal failed")
			return "", "", nil, err
		}

		logger.Info().Str("provider_payment_id", id).Str("provider_status", "approved").Msg("mock create success")
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		logger.Error().Msg("gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	logger.Info().Int("payload_len", len(requestPayload)).Msg("create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		logger.Error().Err(err).Msg("payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		logger.Error().Err(err).Msg("response marshal failed")
		return "", "", nil, err
	}
	providerPaymentID = fmt.Sprintf("%d", resp.ID)
	logger.Info().Str("provider_payment_id", providerPaymentID).Str("provider_status", resp.Status).Msg("create success")

	return providerPaymentID, resp.Status, b, nil
}
