package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/services"
	"estudio_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrDepositPaymentNotFound         = errors.New("deposit payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrDepositAlreadyPaid             = errors.New("deposit already paid")
	ErrDuplicateDepositCharge         = errors.New("deposit charged twice")
	ErrNoDepositDue                   = errors.New("no deposit due for contract")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// duplicateChargeLabel counts approvals that lost the race to mark the
// deposit paid.
const duplicateChargeLabel = "duplicate"

// sandboxFallbackPayerEmail is the test buyer Mercado Pago documents for
// sandbox tokens.
const sandboxFallbackPayerEmail = "test_user_br@testuser.com"

// DepositPaymentOptions mirrors the payment gateway settings the use case
// needs to shape provider payloads.
type DepositPaymentOptions struct {
	MockMode        bool
	Sandbox         bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IDepositPaymentUseCase charges a contract's deposit through the payment
// gateway.
//
// The amount charged always comes from the revenue calculator, never from
// the client payload. An approved charge marks the deposit as paid; when a
// concurrent charge got there first the payment is still recorded and
// ErrDuplicateDepositCharge reports it.

type IDepositPaymentUseCase interface {
	ChargeDeposit(ctx context.Context, contractID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo         interfaces.IDepositPaymentRepository
	contractRepo interfaces.IContractRepository
	gateway      interfaces.IPaymentGateway
	metrics      interfaces.IBillingMetrics
	opts         DepositPaymentOptions
	now          func() time.Time
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(
	repo interfaces.IDepositPaymentRepository,
	contractRepo interfaces.IContractRepository,
	gateway interfaces.IPaymentGateway,
	metrics interfaces.IBillingMetrics,
	opts DepositPaymentOptions,
) *DepositPaymentUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &DepositPaymentUseCase{
		repo:         repo,
		contractRepo: contractRepo,
		gateway:      gateway,
		metrics:      metrics,
		opts:         opts,
		now:          time.Now,
	}
}

func (u *DepositPaymentUseCase) ChargeDeposit(ctx context.Context, contractID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	logger := log.With().Str("component", "deposit-usecase").Str("contract_id", contractID).Logger()
	logger.Info().Int("payload_len", len(mpPayload)).Msg("charge deposit start")

	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.DepositPayment{}, ErrInvalidContractID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			logger.Warn().Msg("invalid payload")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		logger.Error().Msg("gateway not configured")
		return entities.DepositPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.contractRepo == nil {
		logger.Error().Msg("contract repository not configured")
		return entities.DepositPayment{}, errors.New("contract repository not configured")
	}

	c, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		logger.Error().Err(err).Msg("failed loading contract")
		return entities.DepositPayment{}, err
	}
	if c.ID == "" {
		return entities.DepositPayment{}, ErrContractNotFound
	}
	if c.DepositPaid {
		return entities.DepositPayment{}, ErrDepositAlreadyPaid
	}

	amounts, branch := services.ComputeAmountsWithBranch(c)
	u.metrics.AmountsComputed(string(branch))
	if amounts.DepositAmount <= 0 {
		return entities.DepositPayment{}, ErrNoDepositDue
	}
	logger.Info().Stringer("deposit", amounts.DepositAmount).Stringer("total", amounts.TotalAmount).Msg("deposit computed")

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.MockMode {
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			logger.Warn().Msg("missing payment_method_id")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			logger.Warn().Msg("missing/invalid payer")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
	}
	// Reconciliation keys on the contract id; a client value never wins.
	reqMap["external_reference"] = contractID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Sinal do contrato %s", contractID)
	}
	// The source of truth for the amount is the calculator, not the client.
	reqMap["transaction_amount"] = amounts.DepositAmount.Float64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		logger.Error().Err(err).Msg("payment gateway failed")
		return entities.DepositPayment{}, classifyGatewayError(err)
	}
	status := entities.PaymentStatusFromProvider(providerStatus)
	u.metrics.DepositPayment(string(status))
	logger.Info().Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).Msg("payment gateway success")

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.Warn().Err(err).Msg("provider response unmarshal failed")
	}
	if providerPaymentID == "" {
		providerPaymentID = uuid.NewString()
	}

	p := entities.DepositPayment{
		ID:           providerPaymentID,
		ContractID:   contractID,
		Amount:       amounts.DepositAmount,
		Date:         u.now().UTC(),
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.Error().Err(err).Str("payment_id", p.ID).Msg("payment repository create failed")
		return entities.DepositPayment{}, err
	}

	if created.Status == entities.PaymentStatusAprovado {
		updated, err := u.contractRepo.MarkDepositPaid(ctx, contractID)
		if errors.Is(err, interfaces.ErrDepositAlreadyMarked) {
			u.metrics.DepositPayment(duplicateChargeLabel)
			logger.Error().Str("payment_id", created.ID).Msg("deposit approved twice; payment needs a refund")
			return created, fmt.Errorf("%w: payment %s", ErrDuplicateDepositCharge, created.ID)
		}
		if err != nil {
			logger.Error().Err(err).Str("payment_id", created.ID).Msg("marking deposit paid failed")
			return created, fmt.Errorf("mark deposit paid: %w", err)
		}
		if updated.ID == "" {
			return created, ErrContractNotFound
		}
	}
	logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("charge deposit success")
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByContractID(ctx context.Context, contractID string) ([]entities.DepositPayment, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	return u.repo.ListByContractID(ctx, contractID)
}

// ensurePayerDefaults fills payer.type and, for sandbox tokens, a test payer
// email when neither payer.id nor payer.email was sent.
func (u *DepositPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.Sandbox {
		payer["email"] = sandboxFallbackPayerEmail
	}
}

// normalizeSandboxPayer swaps the configured sandbox test user id for its
// email; the sandbox rejects payer ids of test users.
func (u *DepositPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.Sandbox {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Debug().Str("component", "deposit-usecase").Msg("mapped sandbox payer user_id to payer.email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// classifyGatewayError maps Mercado Pago error bodies to sentinel errors.
// Unrecognized errors pass through unchanged.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
