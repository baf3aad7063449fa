package routes

import (
	"estudio_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing            = "/ping"
	PathContracts       = "/contracts"
	PathInvestments     = "/investments"
	PathDepositPayments = "/deposit-payments"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractHandler, depositHandler *handlers.DepositPaymentHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		// static segment registered before :id
		contracts.GET("/calendar", contractHandler.ListCalendar)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.PUT("/:id", contractHandler.UpdateContract)
		contracts.DELETE("/:id", contractHandler.DeleteContract)
		contracts.GET("/:id/amounts", contractHandler.GetContractAmounts)
		contracts.PATCH("/:id/flags/:flag", contractHandler.PatchContractFlag)
		contracts.PATCH("/:id/status", contractHandler.PatchContractStatus)
		contracts.GET("/:id/workflow", contractHandler.GetContractWorkflow)
		contracts.PUT("/:id/workflow", contractHandler.UpdateContractWorkflow)

		contracts.POST("/:id"+PathDepositPayments, depositHandler.ChargeDeposit)
		contracts.GET("/:id"+PathDepositPayments, depositHandler.ListDepositPayments)
	}
}

func addInvestmentRoutes(rg *gin.RouterGroup, investmentHandler *handlers.InvestmentHandler) {
	investments := rg.Group(PathInvestments)
	{
		investments.POST("", investmentHandler.CreateInvestment)
		investments.GET("", investmentHandler.ListInvestments)
		investments.GET("/:id", investmentHandler.GetInvestment)
		investments.PUT("/:id", investmentHandler.UpdateInvestment)
		investments.DELETE("/:id", investmentHandler.DeleteInvestment)
		investments.PATCH("/:id/installments/:number", investmentHandler.PatchInstallment)
	}
}

func addDepositPaymentRoutes(rg *gin.RouterGroup, depositHandler *handlers.DepositPaymentHandler) {
	payments := rg.Group(PathDepositPayments)
	{
		payments.GET("/:payment_id", depositHandler.GetDepositPayment)
	}
}
