package response

import (
	"encoding/json"
	"testing"
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
)

func TestFromDepositPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.DepositPayment{
		ID:           "pay-1",
		ContractID:   "c-1",
		Amount:       money.FromUnits(200) + 5,
		Date:         now,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromDepositPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ContractID != "c-1" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != 200.05 {
		t.Fatalf("expected 200.05, got %v", res.Amount)
	}
	if !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}
