package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
	"estudio_admin/internal/domain/services"
	"estudio_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxInstallments keeps a full regeneration (investment update, puts and
// deletes) inside one DynamoDB transaction of at most 100 items.
const MaxInstallments = 48

var (
	ErrInvestmentNotFound       = errors.New("investment not found")
	ErrInvalidInvestmentID      = errors.New("invalid investment id")
	ErrInvalidInvestmentDate    = errors.New("invalid investment date")
	ErrInvalidInvestmentValue   = errors.New("invalid investment value")
	ErrInvalidInstallmentsCount = errors.New("invalid installments count")
	ErrInstallmentNotFound      = errors.New("installment not found")
	ErrInvalidInstallmentNumber = errors.New("invalid installment number")
	ErrConcurrentModification   = errors.New("investment modified concurrently")
)

type InvestmentInput struct {
	Date              string
	Category          string
	Description       string
	TotalValue        money.Cents
	InstallmentsCount int
	PaymentMethod     string
	ProductURL        string
	ProductImageURL   string
}

// IInvestmentUseCase manages tracked purchases and their installment plans.
//
// The installment set is derived data: any change to date, total value or
// installments count throws the whole set away and generates a new one, so
// the amounts always add up to the total.

type IInvestmentUseCase interface {
	Create(ctx context.Context, in InvestmentInput) (entities.Investment, error)
	GetByID(ctx context.Context, id string) (entities.Investment, error)
	List(ctx context.Context) ([]entities.Investment, error)
	Update(ctx context.Context, id string, in InvestmentInput) (entities.Investment, error)
	Delete(ctx context.Context, id string) error
	MarkInstallmentPaid(ctx context.Context, investmentID string, number int, paid bool) (entities.Installment, error)
}

type InvestmentUseCase struct {
	repo    interfaces.IInvestmentRepository
	metrics interfaces.IBillingMetrics
	now     func() time.Time
}

var _ IInvestmentUseCase = (*InvestmentUseCase)(nil)

func NewInvestmentUseCase(repo interfaces.IInvestmentRepository, metrics interfaces.IBillingMetrics) *InvestmentUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &InvestmentUseCase{repo: repo, metrics: metrics, now: time.Now}
}

func (u *InvestmentUseCase) Create(ctx context.Context, in InvestmentInput) (entities.Investment, error) {
	date, err := validateInvestmentInput(in)
	if err != nil {
		return entities.Investment{}, err
	}

	now := u.now().UTC()
	inv := entities.Investment{
		ID:        uuid.NewString(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInvestmentInput(&inv, in, date)
	installments := u.schedule(inv, now)

	created, err := u.repo.Create(ctx, inv, installments)
	if err != nil {
		log.Error().Err(err).Str("component", "investment-usecase").Str("investment_id", inv.ID).Msg("create failed")
		return entities.Investment{}, err
	}
	created.Installments = installments
	log.Info().
		Str("component", "investment-usecase").
		Str("investment_id", created.ID).
		Stringer("total", created.TotalValue).
		Int("installments", len(installments)).
		Msg("investment created")
	return created, nil
}

func (u *InvestmentUseCase) GetByID(ctx context.Context, id string) (entities.Investment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Investment{}, ErrInvalidInvestmentID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Investment{}, err
	}
	if inv.ID == "" {
		return entities.Investment{}, ErrInvestmentNotFound
	}
	sortInstallments(inv.Installments)
	return inv, nil
}

func (u *InvestmentUseCase) List(ctx context.Context) ([]entities.Investment, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		sortInstallments(list[i].Installments)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (u *InvestmentUseCase) Update(ctx context.Context, id string, in InvestmentInput) (entities.Investment, error) {
	date, err := validateInvestmentInput(in)
	if err != nil {
		return entities.Investment{}, err
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Investment{}, err
	}

	now := u.now().UTC()
	next := current
	applyInvestmentInput(&next, in, date)
	next.UpdatedAt = now

	if !current.ScheduleDiffers(next) {
		updated, err := u.repo.UpdateDetails(ctx, next)
		if err != nil {
			return entities.Investment{}, err
		}
		if updated.ID == "" {
			return entities.Investment{}, ErrInvestmentNotFound
		}
		updated.Installments = current.Installments
		return updated, nil
	}

	next.Version = current.Version + 1
	installments := u.schedule(next, now)
	previousCount := current.InstallmentsCount
	for _, it := range current.Installments {
		if it.InstallmentNumber > previousCount {
			previousCount = it.InstallmentNumber
		}
	}

	if err := u.repo.ReplaceSchedule(ctx, next, current.Version, installments, previousCount); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Warn().Str("component", "investment-usecase").Str("investment_id", current.ID).Int64("version", current.Version).Msg("schedule regeneration lost version check")
			return entities.Investment{}, ErrConcurrentModification
		}
		log.Error().Err(err).Str("component", "investment-usecase").Str("investment_id", current.ID).Msg("schedule regeneration failed")
		return entities.Investment{}, err
	}
	next.Installments = installments
	log.Info().
		Str("component", "investment-usecase").
		Str("investment_id", next.ID).
		Int64("version", next.Version).
		Int("installments", len(installments)).
		Int("previous_installments", previousCount).
		Msg("installment schedule regenerated")
	return next, nil
}

func (u *InvestmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvestmentID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Warn().Str("component", "investment-usecase").Str("investment_id", id).Msg("delete lost version check")
			return ErrConcurrentModification
		}
		return err
	}
	if !deleted {
		return ErrInvestmentNotFound
	}
	log.Info().Str("component", "investment-usecase").Str("investment_id", id).Msg("investment deleted")
	return nil
}

// MarkInstallmentPaid flips one installment between pagado (stamping
// paidAt) and pendiente (clearing it). Nothing else ever changes status.
func (u *InvestmentUseCase) MarkInstallmentPaid(ctx context.Context, investmentID string, number int, paid bool) (entities.Installment, error) {
	investmentID = strings.TrimSpace(investmentID)
	if investmentID == "" {
		return entities.Installment{}, ErrInvalidInvestmentID
	}
	if number < 1 || number > MaxInstallments {
		return entities.Installment{}, ErrInvalidInstallmentNumber
	}

	status := entities.InstallmentStatusPendiente
	var paidAt *time.Time
	if paid {
		status = entities.InstallmentStatusPagado
		t := u.now().UTC()
		paidAt = &t
	}

	updated, err := u.repo.SetInstallmentStatus(ctx, investmentID, number, status, paidAt)
	if err != nil {
		return entities.Installment{}, err
	}
	if updated.ID == "" {
		return entities.Installment{}, ErrInstallmentNotFound
	}
	log.Info().
		Str("component", "investment-usecase").
		Str("investment_id", investmentID).
		Int("installment_number", number).
		Str("status", string(status)).
		Msg("installment status set")
	return updated, nil
}

func (u *InvestmentUseCase) schedule(inv entities.Investment, now time.Time) []entities.Installment {
	installments := services.GenerateInstallments(inv.ID, inv.Date, inv.TotalValue, inv.InstallmentsCount)
	for i := range installments {
		installments[i].CreatedAt = now
	}
	u.metrics.ScheduleGenerated(len(installments))
	return installments
}

func applyInvestmentInput(inv *entities.Investment, in InvestmentInput, date time.Time) {
	inv.Date = date
	inv.Category = strings.TrimSpace(in.Category)
	inv.Description = strings.TrimSpace(in.Description)
	inv.TotalValue = in.TotalValue
	inv.InstallmentsCount = in.InstallmentsCount
	inv.InstallmentValue = services.InstallmentValue(in.TotalValue, in.InstallmentsCount)
	inv.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	inv.ProductURL = strings.TrimSpace(in.ProductURL)
	inv.ProductImageURL = strings.TrimSpace(in.ProductImageURL)
}

func validateInvestmentInput(in InvestmentInput) (time.Time, error) {
	date, err := time.Parse(entities.DateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return time.Time{}, ErrInvalidInvestmentDate
	}
	if in.TotalValue <= 0 {
		return time.Time{}, ErrInvalidInvestmentValue
	}
	if in.InstallmentsCount < 1 || in.InstallmentsCount > MaxInstallments {
		return time.Time{}, ErrInvalidInstallmentsCount
	}
	return date, nil
}

func sortInstallments(in []entities.Installment) {
	sort.Slice(in, func(i, j int) bool { return in[i].InstallmentNumber < in[j].InstallmentNumber })
}
