package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"estudio_admin/internal/domain/entities"
	mock_interfaces "estudio_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReminderUseCase_SweepOverdue(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse(entities.DateLayout, s)
		if err != nil {
			t.Fatalf("bad date %s: %v", s, err)
		}
		return d
	}

	t.Run("keeps only pending installments due before today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvestmentRepository(ctrl)
		uc := NewReminderUseCase(repo)

		today := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)
		repo.EXPECT().ListPendingDueBefore(gomock.Any(), day("2024-03-10")).Return([]entities.Installment{
			{InvestmentID: "inv-1", InstallmentNumber: 1, DueDate: day("2024-02-10"), Status: entities.InstallmentStatusPendiente, Amount: 100},
			{InvestmentID: "inv-1", InstallmentNumber: 2, DueDate: day("2024-03-10"), Status: entities.InstallmentStatusPendiente, Amount: 100},
			{InvestmentID: "inv-2", InstallmentNumber: 1, DueDate: day("2024-01-01"), Status: entities.InstallmentStatusPagado, Amount: 100},
		}, nil)

		overdue, err := uc.SweepOverdue(context.Background(), today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(overdue) != 1 || overdue[0].InvestmentID != "inv-1" || overdue[0].InstallmentNumber != 1 {
			t.Fatalf("unexpected overdue set %+v", overdue)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvestmentRepository(ctrl)
		uc := NewReminderUseCase(repo)

		repo.EXPECT().ListPendingDueBefore(gomock.Any(), gomock.Any()).Return(nil, errors.New("scan failed"))

		if _, err := uc.SweepOverdue(context.Background(), time.Now()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
