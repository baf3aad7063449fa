package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "estudio_admin/internal/adapter/http/dto/request"
	response "estudio_admin/internal/adapter/http/dto/response"
	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/services"
	"estudio_admin/internal/usecase"
	"estudio_admin/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
)

// ContractHandler handles HTTP requests for studio contracts and their
// computed amounts.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract godoc
// @Summary  Create a contract
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    body  body      request.ContractRequest  true  "Contract"
// @Success  201   {object}  response.ContractResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn().Err(err).Str("component", "contract-handler").Msg("invalid create payload")
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(created))
}

// GetContract godoc
// @Summary  Get a contract with freshly computed amounts
// @Tags     contracts
// @Produce  json
// @Param    id   path      string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// UpdateContract godoc
// @Summary  Replace the editable fields of a contract
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    id    path      string                   true  "Contract ID"
// @Param    body  body      request.ContractRequest  true  "Contract"
// @Success  200   {object}  response.ContractResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /contracts/{id} [put]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(updated))
}

// DeleteContract godoc
// @Summary  Delete a contract
// @Tags     contracts
// @Param    id   path  string  true  "Contract ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetContractAmounts godoc
// @Summary  Revenue breakdown of a contract
// @Tags     contracts
// @Produce  json
// @Param    id   path      string  true  "Contract ID"
// @Success  200  {object}  response.AmountsResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id}/amounts [get]
func (h *ContractHandler) GetContractAmounts(c *gin.Context) {
	amounts, err := h.usecase.ComputeAmounts(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAmounts(amounts))
}

// PatchContractFlag godoc
// @Summary  Toggle or set depositPaid, finalPaymentPaid or eventCompleted
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    id    path      string                       true   "Contract ID"
// @Param    flag  path      string                       true   "Flag name"
// @Param    body  body      request.ContractFlagRequest  false  "Explicit value"
// @Success  200   {object}  response.ContractResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /contracts/{id}/flags/{flag} [patch]
func (h *ContractHandler) PatchContractFlag(c *gin.Context) {
	id := c.Param("id")
	flag := entities.ContractFlag(c.Param("flag"))

	var payload request.ContractFlagRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
			return
		}
	}

	var (
		updated entities.Contract
		err     error
	)
	if payload.Value == nil {
		updated, err = h.usecase.ToggleFlag(c.Request.Context(), id, flag)
	} else {
		updated, err = h.usecase.SetFlag(c.Request.Context(), id, flag, *payload.Value)
	}
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(updated))
}

// PatchContractStatus godoc
// @Summary  Override the workflow status; empty clears the override
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    id    path      string                         true  "Contract ID"
// @Param    body  body      request.ContractStatusRequest  true  "Status"
// @Success  200   {object}  response.ContractResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /contracts/{id}/status [patch]
func (h *ContractHandler) PatchContractStatus(c *gin.Context) {
	var payload request.ContractStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	status := entities.ContractStatus(strings.TrimSpace(payload.Status))
	updated, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(updated))
}

// GetContractWorkflow godoc
// @Summary  Production checklist of a contract with its progress
// @Tags     contracts
// @Produce  json
// @Param    id   path      string  true  "Contract ID"
// @Success  200  {object}  response.ContractWorkflowResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id}/workflow [get]
func (h *ContractHandler) GetContractWorkflow(c *gin.Context) {
	wf, err := h.usecase.GetWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractWorkflow(wf))
}

// UpdateContractWorkflow godoc
// @Summary  Replace the production checklist of a contract
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    id    path      string                           true  "Contract ID"
// @Param    body  body      request.ContractWorkflowRequest  true  "Checklist"
// @Success  200   {object}  response.ContractWorkflowResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /contracts/{id}/workflow [put]
func (h *ContractHandler) UpdateContractWorkflow(c *gin.Context) {
	var payload request.ContractWorkflowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	wf, err := h.usecase.UpdateWorkflow(c.Request.Context(), c.Param("id"), payload.ToEntities())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractWorkflow(wf))
}

// ListCalendar godoc
// @Summary  Contracts for the admin calendar
// @Tags     contracts
// @Produce  json
// @Param    year    query     int     false  "Event year"
// @Param    month   query     int     false  "Event month (1-12)"
// @Param    status  query     string  false  "Effective status or all"
// @Success  200     {array}   response.ContractResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /contracts/calendar [get]
func (h *ContractHandler) ListCalendar(c *gin.Context) {
	filter, ok := parseCalendarFilter(c)
	if !ok {
		appErr := mapContractError(usecase.ErrInvalidCalendarFilter)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	contracts, err := h.usecase.ListCalendar(c.Request.Context(), filter)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func parseCalendarFilter(c *gin.Context) (services.CalendarFilter, bool) {
	var f services.CalendarFilter
	if v := strings.TrimSpace(c.Query("year")); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, false
		}
		f.Year = year
	}
	if v := strings.TrimSpace(c.Query("month")); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			return f, false
		}
		f.Month = month
	}
	f.Status = strings.TrimSpace(c.Query("status"))
	return f, true
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidEventDate),
		errors.Is(err, usecase.ErrInvalidLineItem),
		errors.Is(err, usecase.ErrInvalidContractAmount):
		return pkg.NewDomainError("INVALID_CONTRACT_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContractFlag):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACT_FLAG", "Unknown contract flag", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContractStatus):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACT_STATUS", "Unknown contract status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWorkflow):
		return pkg.NewDomainError("INVALID_WORKFLOW", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCalendarFilter):
		return pkg.NewDomainErrorSimple("INVALID_CALENDAR_FILTER", "Invalid year, month or status filter", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		log.Error().Err(err).Str("component", "contract-handler").Msg("unexpected error")
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
