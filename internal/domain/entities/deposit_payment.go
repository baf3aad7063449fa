package entities

import (
	"encoding/json"
	"time"

	"estudio_admin/internal/domain/money"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PaymentStatusFromProvider maps a Mercado Pago status to ours.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}

// DepositPayment records one attempt to collect a contract deposit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_id-index): contract_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response (JSON) for audit.
//   - MPPayload is the parsed form, kept for querying/debugging.
type DepositPayment struct {
	ID         string        `json:"id"`
	ContractID string        `json:"contract_id"`
	Amount     money.Cents   `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
