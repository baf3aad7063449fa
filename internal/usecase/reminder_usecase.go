package usecase

import (
	"context"
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
	"estudio_admin/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// IReminderUseCase finds installments whose due date has passed without a
// payment being recorded.
type IReminderUseCase interface {
	SweepOverdue(ctx context.Context, today time.Time) ([]entities.Installment, error)
}

type ReminderUseCase struct {
	repo interfaces.IInvestmentRepository
}

var _ IReminderUseCase = (*ReminderUseCase)(nil)

func NewReminderUseCase(repo interfaces.IInvestmentRepository) *ReminderUseCase {
	return &ReminderUseCase{repo: repo}
}

// SweepOverdue logs one warning per pending installment due strictly before
// today's calendar date. It never changes installment status.
func (u *ReminderUseCase) SweepOverdue(ctx context.Context, today time.Time) ([]entities.Installment, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	pending, err := u.repo.ListPendingDueBefore(ctx, day)
	if err != nil {
		log.Error().Err(err).Str("component", "reminder-usecase").Msg("listing overdue installments failed")
		return nil, err
	}

	overdue := make([]entities.Installment, 0, len(pending))
	var total money.Cents
	for _, it := range pending {
		if it.Status != entities.InstallmentStatusPendiente || !it.DueDate.Before(day) {
			continue
		}
		overdue = append(overdue, it)
		total += it.Amount
		log.Warn().
			Str("component", "reminder-usecase").
			Str("investment_id", it.InvestmentID).
			Int("installment_number", it.InstallmentNumber).
			Str("due_date", it.DueDate.Format(entities.DateLayout)).
			Int("days_overdue", int(day.Sub(it.DueDate).Hours()/24)).
			Stringer("amount", it.Amount).
			Msg("installment overdue")
	}
	log.Info().
		Str("component", "reminder-usecase").
		Str("day", day.Format(entities.DateLayout)).
		Int("overdue", len(overdue)).
		Stringer("overdue_total", total).
		Msg("overdue sweep finished")
	return overdue, nil
}
