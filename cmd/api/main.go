package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "estudio_admin/docs"
	"estudio_admin/internal/adapter/http/handlers"
	"estudio_admin/internal/adapter/http/routes"
	"estudio_admin/internal/adapter/persistence/repository"
	"estudio_admin/internal/infrastructure/config"
	"estudio_admin/internal/infrastructure/database"
	"estudio_admin/internal/infrastructure/logging"
	"estudio_admin/internal/infrastructure/metrics"
	"estudio_admin/internal/infrastructure/payments"
	"estudio_admin/internal/usecase"
	"estudio_admin/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// @title           Estudio Admin API
// @version         1.0
// @description     Photography studio admin backend: contracts, revenue breakdown, deposits and investment installments, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	logger := logging.Setup(logging.Options{
		ServiceName: "estudio-admin-api",
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
	})
	if cfg.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		log.Fatal().Err(err).Str("component", "main").Msg("connecting to DynamoDB")
	}

	contractRepo := repository.NewContractDynamoRepository(ddb, cfg.DynamoDB.ContractsTable)
	investmentRepo := repository.NewInvestmentDynamoRepository(ddb, cfg.DynamoDB.InvestmentsTable, cfg.DynamoDB.InstallmentsTable)
	depositRepo := repository.NewDepositPaymentDynamoRepository(ddb, cfg.DynamoDB.DepositPaymentsTable)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Warn().Err(err).Str("component", "main").Msg("Mercado Pago gateway not configured; deposit charges are disabled")
	} else {
		gateway = mpGateway
	}

	billingMetrics := metrics.NewBillingMetrics(prometheus.DefaultRegisterer)

	contractUseCase := usecase.NewContractUseCase(contractRepo, billingMetrics)
	investmentUseCase := usecase.NewInvestmentUseCase(investmentRepo, billingMetrics)
	depositUseCase := usecase.NewDepositPaymentUseCase(depositRepo, contractRepo, gateway, billingMetrics, usecase.DepositPaymentOptions{
		MockMode:        cfg.Payments.MockEnabled(),
		Sandbox:         cfg.Payments.Sandbox(),
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	})

	router := routes.NewRouter(routes.Dependencies{
		Logger:          logger,
		Contracts:       handlers.NewContractHandler(contractUseCase),
		Investments:     handlers.NewInvestmentHandler(investmentUseCase),
		DepositPayments: handlers.NewDepositPaymentHandler(depositUseCase, cfg.Payments.MockEnabled()),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("component", "main").Str("addr", srv.Addr).Str("env", cfg.App.Env).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Str("component", "main").Msg("failed to start the application")
		}
	}()

	<-ctx.Done()
	log.Info().Str("component", "main").Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Str("component", "main").Msg("graceful shutdown failed")
	}
}
