package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
	"estudio_admin/internal/domain/services"
	"estudio_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrInvalidContractID     = errors.New("invalid contract id")
	ErrInvalidClientName     = errors.New("invalid client name")
	ErrInvalidEventDate      = errors.New("invalid event date")
	ErrInvalidLineItem       = errors.New("invalid line item")
	ErrInvalidContractAmount = errors.New("invalid contract amount")
	ErrInvalidContractFlag   = errors.New("invalid contract flag")
	ErrInvalidContractStatus = errors.New("invalid contract status")
	ErrInvalidCalendarFilter = errors.New("invalid calendar filter")
)

const (
	defaultEventType     = "Evento"
	defaultEventTime     = "00:00"
	defaultPaymentMethod = "pix"
)

// ContractInput carries the editable fields of a contract. TotalAmount is
// the package total typed by the admin; it only matters when services are
// not itemized.
type ContractInput struct {
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	EventType       string
	EventDate       string
	EventTime       string
	EventLocation   string
	PackageTitle    string
	PackageDuration string
	PaymentMethod   string
	Message         string
	Services        []entities.ServiceItem
	StoreItems      []entities.StoreItem
	TravelFee       money.Cents
	TotalAmount     money.Cents
	Status          entities.ContractStatus
}

// IContractUseCase exposes contract bookkeeping and the revenue calculator.
//
// Amounts are never trusted from storage: every read path that needs
// deposit/remaining recomputes them from the line items.

type IContractUseCase interface {
	Create(ctx context.Context, in ContractInput) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	Update(ctx context.Context, id string, in ContractInput) (entities.Contract, error)
	Delete(ctx context.Context, id string) error
	ComputeAmounts(ctx context.Context, id string) (entities.ContractAmounts, error)
	ToggleFlag(ctx context.Context, id string, flag entities.ContractFlag) (entities.Contract, error)
	SetFlag(ctx context.Context, id string, flag entities.ContractFlag, value bool) (entities.Contract, error)
	SetStatus(ctx context.Context, id string, status entities.ContractStatus) (entities.Contract, error)
	ListCalendar(ctx context.Context, filter services.CalendarFilter) ([]entities.Contract, error)
	GetWorkflow(ctx context.Context, id string) (ContractWorkflow, error)
	UpdateWorkflow(ctx context.Context, id string, wf []entities.WorkflowCategory) (ContractWorkflow, error)
}

type ContractUseCase struct {
	repo    interfaces.IContractRepository
	metrics interfaces.IBillingMetrics
	now     func() time.Time
	newID   func() string
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, metrics interfaces.IBillingMetrics) *ContractUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &ContractUseCase{repo: repo, metrics: metrics, now: time.Now, newID: uuid.NewString}
}

func (u *ContractUseCase) Create(ctx context.Context, in ContractInput) (entities.Contract, error) {
	if err := validateContractInput(in); err != nil {
		return entities.Contract{}, err
	}

	now := u.now().UTC()
	c := entities.Contract{
		ID:        u.newID(),
		Status:    entities.ContractStatusBooked,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyContractInput(&c, in)
	u.snapshotAmounts(&c)

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Error().Err(err).Str("component", "contract-usecase").Str("contract_id", c.ID).Msg("create failed")
		return entities.Contract{}, err
	}
	log.Info().
		Str("component", "contract-usecase").
		Str("contract_id", created.ID).
		Str("event_date", created.EventDate).
		Stringer("total", created.TotalAmount).
		Msg("contract created")
	return created, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) Update(ctx context.Context, id string, in ContractInput) (entities.Contract, error) {
	if err := validateContractInput(in); err != nil {
		return entities.Contract{}, err
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}

	applyContractInput(&current, in)
	current.UpdatedAt = u.now().UTC()
	u.snapshotAmounts(&current)
	// The repository writes status only when the edit names one; the stored
	// flags and status may have moved since the read above.
	current.Status = in.Status

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		log.Error().Err(err).Str("component", "contract-usecase").Str("contract_id", current.ID).Msg("update failed")
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return updated, nil
}

func (u *ContractUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidContractID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContractNotFound
	}
	log.Info().Str("component", "contract-usecase").Str("contract_id", id).Msg("contract deleted")
	return nil
}

func (u *ContractUseCase) ComputeAmounts(ctx context.Context, id string) (entities.ContractAmounts, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ContractAmounts{}, err
	}
	amounts, branch := services.ComputeAmountsWithBranch(c)
	u.metrics.AmountsComputed(string(branch))
	return amounts, nil
}

func (u *ContractUseCase) ToggleFlag(ctx context.Context, id string, flag entities.ContractFlag) (entities.Contract, error) {
	if !flag.Valid() {
		return entities.Contract{}, ErrInvalidContractFlag
	}
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	return u.SetFlag(ctx, c.ID, flag, !c.Flag(flag))
}

func (u *ContractUseCase) SetFlag(ctx context.Context, id string, flag entities.ContractFlag, value bool) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if !flag.Valid() {
		return entities.Contract{}, ErrInvalidContractFlag
	}

	updated, err := u.repo.SetFlag(ctx, id, flag, value)
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	log.Info().
		Str("component", "contract-usecase").
		Str("contract_id", id).
		Str("flag", string(flag)).
		Bool("value", value).
		Msg("contract flag set")
	return updated, nil
}

// SetStatus overrides the workflow status. An empty status clears the
// override so the status is derived from the flags again.
func (u *ContractUseCase) SetStatus(ctx context.Context, id string, status entities.ContractStatus) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if status != "" && !status.Valid() {
		return entities.Contract{}, ErrInvalidContractStatus
	}

	updated, err := u.repo.SetStatus(ctx, id, status)
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return updated, nil
}

func (u *ContractUseCase) ListCalendar(ctx context.Context, filter services.CalendarFilter) ([]entities.Contract, error) {
	if err := validateCalendarFilter(filter); err != nil {
		return nil, err
	}

	var (
		contracts []entities.Contract
		err       error
	)
	if filter.Year != 0 && filter.Month != 0 {
		contracts, err = u.repo.ListByEventMonth(ctx, fmt.Sprintf("%04d-%02d", filter.Year, filter.Month))
	} else {
		contracts, err = u.repo.List(ctx)
	}
	if err != nil {
		log.Error().Err(err).Str("component", "contract-usecase").Msg("calendar listing failed")
		return nil, err
	}
	return services.FilterCalendar(contracts, filter), nil
}

// snapshotAmounts stores the calculator output on the contract. The total
// becomes the persisted fallback for later reads.
func (u *ContractUseCase) snapshotAmounts(c *entities.Contract) {
	amounts, branch := services.ComputeAmountsWithBranch(*c)
	u.metrics.AmountsComputed(string(branch))
	c.TotalAmount = amounts.TotalAmount
	c.DepositAmount = amounts.DepositAmount
	c.RemainingAmount = amounts.RemainingAmount
}

func applyContractInput(c *entities.Contract, in ContractInput) {
	c.ClientName = strings.TrimSpace(in.ClientName)
	c.ClientEmail = strings.TrimSpace(in.ClientEmail)
	c.ClientPhone = strings.TrimSpace(in.ClientPhone)
	c.EventType = orDefault(in.EventType, defaultEventType)
	c.EventDate = strings.TrimSpace(in.EventDate)
	c.EventTime = orDefault(in.EventTime, defaultEventTime)
	c.EventLocation = strings.TrimSpace(in.EventLocation)
	c.PackageTitle = strings.TrimSpace(in.PackageTitle)
	c.PackageDuration = strings.TrimSpace(in.PackageDuration)
	c.PaymentMethod = orDefault(in.PaymentMethod, defaultPaymentMethod)
	c.Message = in.Message
	c.Services = in.Services
	c.StoreItems = in.StoreItems
	c.TravelFee = in.TravelFee
	c.TotalAmount = in.TotalAmount
	if in.Status != "" {
		c.Status = in.Status
	}
}

func validateContractInput(in ContractInput) error {
	if strings.TrimSpace(in.ClientName) == "" {
		return ErrInvalidClientName
	}
	if _, err := time.Parse(entities.DateLayout, strings.TrimSpace(in.EventDate)); err != nil {
		return ErrInvalidEventDate
	}
	for _, s := range in.Services {
		if s.Quantity < 0 {
			return fmt.Errorf("%w: service %q has negative quantity", ErrInvalidLineItem, s.Name)
		}
	}
	for _, s := range in.StoreItems {
		if s.Quantity < 0 || s.Price < 0 {
			return fmt.Errorf("%w: store item %q", ErrInvalidLineItem, s.Name)
		}
	}
	if in.TravelFee < 0 || in.TotalAmount < 0 {
		return ErrInvalidContractAmount
	}
	if in.Status != "" && !in.Status.Valid() {
		return ErrInvalidContractStatus
	}
	return nil
}

func validateCalendarFilter(f services.CalendarFilter) error {
	if f.Month < 0 || f.Month > 12 {
		return ErrInvalidCalendarFilter
	}
	if f.Year != 0 && (f.Year < 1900 || f.Year > 9999) {
		return ErrInvalidCalendarFilter
	}
	status := strings.TrimSpace(f.Status)
	if status != "" && status != services.StatusAll && !entities.ContractStatus(status).Valid() {
		return ErrInvalidCalendarFilter
	}
	return nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

type noopMetrics struct{}

func (noopMetrics) AmountsComputed(string) {}
func (noopMetrics) ScheduleGenerated(int)  {}
func (noopMetrics) DepositPayment(string)  {}
