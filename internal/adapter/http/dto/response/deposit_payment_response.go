package response

import (
	"time"

	"estudio_admin/internal/domain/entities"
)

type DepositPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	ContractID  string    `json:"contract_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		ContractID:   p.ContractID,
		Amount:       p.Amount.Float64(),
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromDepositPayments(list []entities.DepositPayment) []DepositPaymentResponse {
	out := make([]DepositPaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromDepositPayment(p))
	}
	return out
}
