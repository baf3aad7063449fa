package entities

import (
	"time"

	"estudio_admin/internal/domain/money"
)

// InstallmentStatus is toggled only by an explicit user action.
type InstallmentStatus string

const (
	InstallmentStatusPendiente InstallmentStatus = "pendiente"
	InstallmentStatusPagado    InstallmentStatus = "pagado"
)

// Investment is a tracked studio purchase paid in monthly installments.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version is bumped on every schedule regeneration (optimistic lock)
type Investment struct {
	ID                string      `json:"id"`
	Date              time.Time   `json:"date"`
	Category          string      `json:"category"`
	Description       string      `json:"description"`
	TotalValue        money.Cents `json:"total_value"`
	InstallmentsCount int         `json:"installments_count"`
	InstallmentValue  money.Cents `json:"installment_value"`
	PaymentMethod     string      `json:"payment_method"`
	ProductURL        string      `json:"product_url"`
	ProductImageURL   string      `json:"product_image_url"`
	Version           int64       `json:"version"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`

	Installments []Installment `json:"installments,omitempty"`
}

// ScheduleDiffers reports whether any schedule-defining field changed.
// A change in any of them forces the whole installment set to be rebuilt.
func (i Investment) ScheduleDiffers(other Investment) bool {
	return !i.Date.Equal(other.Date) ||
		i.TotalValue != other.TotalValue ||
		i.InstallmentsCount != other.InstallmentsCount
}

// Status is pagado only when there is at least one installment and all of
// them are paid.
func (i Investment) Status() InstallmentStatus {
	if len(i.Installments) == 0 {
		return InstallmentStatusPendiente
	}
	for _, in := range i.Installments {
		if in.Status != InstallmentStatusPagado {
			return InstallmentStatusPendiente
		}
	}
	return InstallmentStatusPagado
}

// Installment is one scheduled partial payment of an Investment.
//
// Storage model (DynamoDB):
//   - PK: investment_id
//   - SK: installment_number
//
// The composite key makes installment numbers unique per investment.
type Installment struct {
	ID                string            `json:"id"`
	InvestmentID      string            `json:"investment_id"`
	InstallmentNumber int               `json:"installment_number"`
	Amount            money.Cents       `json:"amount"`
	DueDate           time.Time         `json:"due_date"`
	Status            InstallmentStatus `json:"status"`
	PaidAt            *time.Time        `json:"paid_at,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}
