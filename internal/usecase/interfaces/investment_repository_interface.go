package interfaces

import (
	"context"
	"errors"
	"time"

	"estudio_admin/internal/domain/entities"
)

// ErrVersionConflict is returned when a schedule write lost an optimistic
// version check against a concurrent writer.
var ErrVersionConflict = errors.New("version conflict")

// IInvestmentRepository abstracts DynamoDB persistence for Investment and
// its installments.
//
// Installment sets are only ever written whole:
//   - Create stores the investment and its schedule atomically
//   - ReplaceSchedule swaps the schedule atomically, guarded by version
//   - Delete removes the investment and every installment atomically

type IInvestmentRepository interface {
	Create(ctx context.Context, inv entities.Investment, installments []entities.Installment) (entities.Investment, error)
	GetByID(ctx context.Context, id string) (entities.Investment, error)
	List(ctx context.Context) ([]entities.Investment, error)
	UpdateDetails(ctx context.Context, inv entities.Investment) (entities.Investment, error)
	ReplaceSchedule(ctx context.Context, inv entities.Investment, expectedVersion int64, installments []entities.Installment, previousCount int) error
	Delete(ctx context.Context, id string) (bool, error)
	SetInstallmentStatus(ctx context.Context, investmentID string, number int, status entities.InstallmentStatus, paidAt *time.Time) (entities.Installment, error)
	ListPendingDueBefore(ctx context.Context, day time.Time) ([]entities.Installment, error)
}
