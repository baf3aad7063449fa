package request

import (
	"estudio_admin/internal/domain/money"
	"estudio_admin/internal/usecase"
)

// InvestmentRequest is the create/update payload of an investment. Changing
// date, total_value or installments_count regenerates every installment.
type InvestmentRequest struct {
	Date              string  `json:"date" binding:"required"`
	Category          string  `json:"category" binding:"required"`
	Description       string  `json:"description"`
	TotalValue        float64 `json:"total_value" binding:"required,gt=0,lte=1000000000000"`
	InstallmentsCount int     `json:"installments_count" binding:"required,min=1,max=48"`
	PaymentMethod     string  `json:"payment_method"`
	ProductURL        string  `json:"product_url" binding:"omitempty,url"`
	ProductImageURL   string  `json:"product_image_url" binding:"omitempty,url"`
}

func (r InvestmentRequest) ToInput() usecase.InvestmentInput {
	return usecase.InvestmentInput{
		Date:              r.Date,
		Category:          r.Category,
		Description:       r.Description,
		TotalValue:        money.FromFloat(r.TotalValue),
		InstallmentsCount: r.InstallmentsCount,
		PaymentMethod:     r.PaymentMethod,
		ProductURL:        r.ProductURL,
		ProductImageURL:   r.ProductImageURL,
	}
}

// InstallmentStatusRequest marks an installment paid or unpaid.
type InstallmentStatusRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}
