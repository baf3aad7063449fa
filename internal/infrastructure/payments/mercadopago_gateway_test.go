package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	appconfig "estudio_admin/internal/infrastructure/config"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{})
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestMercadoPagoGateway_MockApproves(t *testing.T) {
	g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{GatewayMock: "true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fixed := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":250,"external_reference":"c-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected id=%q status=%q", id, status)
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["external_reference"] != "c-1" || resp["transaction_amount"] != float64(250) {
		t.Fatalf("expected request fields echoed, got %v", resp)
	}
	if resp["date_approved"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected date_approved %v", resp["date_approved"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected not configured error, got %v", err)
	}
}
