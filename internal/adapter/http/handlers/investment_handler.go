package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "estudio_admin/internal/adapter/http/dto/request"
	response "estudio_admin/internal/adapter/http/dto/response"
	"estudio_admin/internal/usecase"
	"estudio_admin/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidInvestmentPayload = pkg.NewDomainErrorSimple("INVALID_INVESTMENT_INPUT", "Invalid investment payload", http.StatusBadRequest)
)

// InvestmentHandler handles HTTP requests for studio investments and their
// installment plans.

type InvestmentHandler struct {
	usecase usecase.IInvestmentUseCase
}

func NewInvestmentHandler(uc usecase.IInvestmentUseCase) *InvestmentHandler {
	return &InvestmentHandler{usecase: uc}
}

// CreateInvestment godoc
// @Summary  Create an investment and its installment schedule
// @Tags     investments
// @Accept   json
// @Produce  json
// @Param    body  body      request.InvestmentRequest  true  "Investment"
// @Success  201   {object}  response.InvestmentResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	var payload request.InvestmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn().Err(err).Str("component", "investment-handler").Msg("invalid create payload")
		c.JSON(errInvalidInvestmentPayload.HTTPStatus, errInvalidInvestmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapInvestmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInvestment(created))
}

// ListInvestments godoc
// @Summary  Investments with their installments, newest first
// @Tags     investments
// @Produce  json
// @Success  200  {array}  response.InvestmentResponse
// @Router   /investments [get]
func (h *InvestmentHandler) ListInvestments(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInvestmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvestments(list))
}

// GetInvestment godoc
// @Summary  Get an investment
// @Tags     investments
// @Produce  json
// @Param    id   path      string  true  "Investment ID"
// @Success  200  {object}  response.InvestmentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvestmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvestment(inv))
}

// UpdateInvestment godoc
// @Summary  Update an investment, regenerating installments when the schedule changes
// @Tags     investments
// @Accept   json
// @Produce  json
// @Param    id    path      string                     true  "Investment ID"
// @Param    body  body      request.InvestmentRequest  true  "Investment"
// @Success  200   {object}  response.InvestmentResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Router   /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	var payload request.InvestmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvestmentPayload.HTTPStatus, errInvalidInvestmentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapInvestmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvestment(updated))
}

// DeleteInvestment godoc
// @Summary  Delete an investment and all of its installments
// @Tags     investments
// @Param    id   path  string  true  "Investment ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvestmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// PatchInstallment godoc
// @Summary  Mark an installment paid or unpaid
// @Tags     investments
// @Accept   json
// @Produce  json
// @Param    id      path      string                            true  "Investment ID"
// @Param    number  path      int                               true  "Installment number"
// @Param    body    body      request.InstallmentStatusRequest  true  "Paid flag"
// @Success  200     {object}  response.InstallmentResponse
// @Failure  400     {object}  pkg.HTTPError
// @Failure  404     {object}  pkg.HTTPError
// @Router   /investments/{id}/installments/{number} [patch]
func (h *InvestmentHandler) PatchInstallment(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		appErr := mapInvestmentError(usecase.ErrInvalidInstallmentNumber)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	var payload request.InstallmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvestmentPayload.HTTPStatus, errInvalidInvestmentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.MarkInstallmentPaid(c.Request.Context(), c.Param("id"), number, *payload.Paid)
	if err != nil {
		appErr := mapInvestmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInstallment(updated))
}

func mapInvestmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvestmentID),
		errors.Is(err, usecase.ErrInvalidInvestmentDate),
		errors.Is(err, usecase.ErrInvalidInvestmentValue),
		errors.Is(err, usecase.ErrInvalidInstallmentsCount),
		errors.Is(err, usecase.ErrInvalidInstallmentNumber):
		return pkg.NewDomainError("INVALID_INVESTMENT_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvestmentNotFound):
		return pkg.NewDomainErrorSimple("INVESTMENT_NOT_FOUND", "Investment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Investment was modified concurrently, reload and retry", http.StatusConflict)
	default:
		log.Error().Err(err).Str("component", "investment-handler").Msg("unexpected error")
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
