package services

import (
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GenerateInstallments splits total into count monthly installments.
//
// Every installment gets floor(total/count) cents; the leftover cents go one
// each to the earliest installments, so the amounts always sum to total.
// Due dates advance the anchor by whole months using Go's calendar
// normalization (2024-01-31 + 1 month = 2024-03-02).
//
// count below 1 is clamped to 1. Non-positive totals are the caller's
// responsibility to reject.
func GenerateInstallments(investmentID string, start time.Time, total money.Cents, count int) []entities.Installment {
	if count < 1 {
		count = 1
	}
	n := money.Cents(count)
	base := total / n
	if total%n != 0 && total < 0 {
		base--
	}
	remainder := int(total - base*n)

	out := make([]entities.Installment, 0, count)
	for i := 0; i < count; i++ {
		amount := base
		if i < remainder {
			amount++
		}
		out = append(out, entities.Installment{
			ID:                uuid.NewString(),
			InvestmentID:      investmentID,
			InstallmentNumber: i + 1,
			Amount:            amount,
			DueDate:           DueDate(start, i),
			Status:            entities.InstallmentStatusPendiente,
		})
	}
	return out
}

// DueDate is the anchor advanced by offset months.
func DueDate(start time.Time, offset int) time.Time {
	return start.AddDate(0, offset, 0)
}

// InstallmentValue is the nominal per-installment value shown on the
// investment, total / count rounded to centavos.
func InstallmentValue(total money.Cents, count int) money.Cents {
	if count < 1 {
		count = 1
	}
	return money.FromDecimal(total.Decimal().Div(decimal.NewFromInt(int64(count))))
}
