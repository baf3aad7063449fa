package response

import (
	"time"

	"estudio_admin/internal/domain/entities"
)

type InstallmentResponse struct {
	ID                string     `json:"id"`
	InstallmentNumber int        `json:"installment_number"`
	Amount            float64    `json:"amount"`
	DueDate           string     `json:"due_date"`
	Status            string     `json:"status"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}

type InvestmentResponse struct {
	ID                string                `json:"id"`
	Date              string                `json:"date"`
	Category          string                `json:"category"`
	Description       string                `json:"description"`
	TotalValue        float64               `json:"total_value"`
	InstallmentsCount int                   `json:"installments_count"`
	InstallmentValue  float64               `json:"installment_value"`
	PaymentMethod     string                `json:"payment_method"`
	ProductURL        string                `json:"product_url"`
	ProductImageURL   string                `json:"product_image_url"`
	Status            string                `json:"status"`
	Installments      []InstallmentResponse `json:"installments"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func FromInstallment(in entities.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:                in.ID,
		InstallmentNumber: in.InstallmentNumber,
		Amount:            in.Amount.Float64(),
		DueDate:           in.DueDate.Format(entities.DateLayout),
		Status:            string(in.Status),
		PaidAt:            in.PaidAt,
	}
}

func FromInvestment(inv entities.Investment) InvestmentResponse {
	installments := make([]InstallmentResponse, 0, len(inv.Installments))
	for _, in := range inv.Installments {
		installments = append(installments, FromInstallment(in))
	}
	return InvestmentResponse{
		ID:                inv.ID,
		Date:              inv.Date.Format(entities.DateLayout),
		Category:          inv.Category,
		Description:       inv.Description,
		TotalValue:        inv.TotalValue.Float64(),
		InstallmentsCount: inv.InstallmentsCount,
		InstallmentValue:  inv.InstallmentValue.Float64(),
		PaymentMethod:     inv.PaymentMethod,
		ProductURL:        inv.ProductURL,
		ProductImageURL:   inv.ProductImageURL,
		Status:            string(inv.Status()),
		Installments:      installments,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}

func FromInvestments(list []entities.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvestment(inv))
	}
	return out
}
