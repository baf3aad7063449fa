package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	request "estudio_admin/internal/adapter/http/dto/request"
	response "estudio_admin/internal/adapter/http/dto/response"
	"estudio_admin/internal/usecase"
	"estudio_admin/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DepositPaymentHandler handles HTTP requests for contract deposit payments.

type DepositPaymentHandler struct {
	usecase  usecase.IDepositPaymentUseCase
	mockMode bool
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase, mockMode bool) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc, mockMode: mockMode}
}

// ChargeDeposit godoc
// @Summary  Charge the computed deposit of a contract through Mercado Pago
// @Tags     deposit-payments
// @Accept   json
// @Produce  json
// @Param    id    path      string                               true  "Contract ID"
// @Param    body  body      request.DepositPaymentCreateRequest  true  "Mercado Pago payload, bare or wrapped in mp_payload"
// @Success  200   {object}  response.DepositPaymentResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Router   /contracts/{id}/deposit-payments [post]
func (h *DepositPaymentHandler) ChargeDeposit(c *gin.Context) {
	contractID := c.Param("id")
	logger := log.With().Str("component", "deposit-handler").Str("contract_id", contractID).Logger()
	logger.Info().Msg("charge start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			logger.Warn().Err(err).Msg("invalid payload")
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		logger.Warn().Err(err).Msg("payload invalid in mock mode; fallback to empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.ChargeDeposit(c.Request.Context(), contractID, mpPayload)
	if errors.Is(err, usecase.ErrDuplicateDepositCharge) {
		logger.Error().Err(err).Str("payment_id", created.ID).Msg("duplicate deposit charge")
		appErr := pkg.NewDomainErrorSimple("DUPLICATE_DEPOSIT_CHARGE",
			fmt.Sprintf("Deposit was already paid by a concurrent charge; payment %s needs a refund", created.ID), http.StatusConflict)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("charge failed")
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("charge success")

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// ListDepositPayments godoc
// @Summary  Deposit payment attempts of a contract
// @Tags     deposit-payments
// @Produce  json
// @Param    id      path      string  true   "Contract ID"
// @Param    latest  query     bool    false  "Return only the most recent attempt"
// @Success  200     {array}   response.DepositPaymentResponse
// @Failure  404     {object}  pkg.HTTPError
// @Router   /contracts/{id}/deposit-payments [get]
func (h *DepositPaymentHandler) ListDepositPayments(c *gin.Context) {
	contractID := c.Param("id")

	payments, err := h.usecase.ListByContractID(c.Request.Context(), contractID)
	if err != nil {
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if c.Query("latest") != "true" {
		c.JSON(http.StatusOK, response.FromDepositPayments(payments))
		return
	}
	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

// GetDepositPayment godoc
// @Summary  Get a deposit payment by id
// @Tags     deposit-payments
// @Produce  json
// @Param    payment_id  path      string  true  "Payment ID"
// @Success  200         {object}  response.DepositPaymentResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /deposit-payments/{payment_id} [get]
func (h *DepositPaymentHandler) GetDepositPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayment(p))
}

// readMPPayload accepts the Mercado Pago body either bare or wrapped in an
// mp_payload envelope.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var wrapped request.DepositPaymentCreateRequest
			if err := json.Unmarshal(raw, &wrapped); err != nil {
				return nil, err
			}
			trimmed := strings.TrimSpace(string(wrapped.MPPayload))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDepositAlreadyPaid):
		return pkg.NewDomainErrorSimple("DEPOSIT_ALREADY_PAID", "Deposit already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoDepositDue):
		return pkg.NewDomainErrorSimple("NO_DEPOSIT_DUE", "Contract has no deposit to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
