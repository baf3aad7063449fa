package request

import "encoding/json"

// DepositPaymentCreateRequest is the payload for the "cobra sinal" route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. The amount inside it is always replaced by the computed deposit.

type DepositPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
