package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estudio_admin/internal/adapter/persistence/repository"
	"estudio_admin/internal/infrastructure/config"
	"estudio_admin/internal/infrastructure/database"
	"estudio_admin/internal/infrastructure/logging"
	"estudio_admin/internal/infrastructure/metrics"
	"estudio_admin/internal/infrastructure/scheduler"
	"estudio_admin/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	jobOverdueInstallments = "overdue-installments"
	jobTimeout             = 2 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	logging.Setup(logging.Options{
		ServiceName: "estudio-admin-reminders",
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := time.LoadLocation(cfg.Reminders.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("component", "main").Str("tz", cfg.Reminders.Timezone).Msg("invalid REMINDERS_TZ")
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		log.Fatal().Err(err).Str("component", "main").Msg("connecting to DynamoDB")
	}
	investmentRepo := repository.NewInvestmentDynamoRepository(ddb, cfg.DynamoDB.InvestmentsTable, cfg.DynamoDB.InstallmentsTable)
	reminders := usecase.NewReminderUseCase(investmentRepo)

	cronMetrics := metrics.NewCronJobMetrics(prometheus.DefaultRegisterer)
	sched := scheduler.New(ctx, scheduler.Options{Location: loc, Metrics: cronMetrics, Timeout: jobTimeout})

	sweep := func(ctx context.Context) error {
		overdue, err := reminders.SweepOverdue(ctx, time.Now().In(loc))
		if err != nil {
			return err
		}
		cronMetrics.SetOverdue(len(overdue))
		return nil
	}
	if err := sched.Register(jobOverdueInstallments, cfg.Reminders.Cron, sweep); err != nil {
		log.Fatal().Err(err).Str("component", "main").Msg("registering reminder job")
	}
	if cfg.Reminders.RunOnStart {
		_ = sched.Run(jobOverdueInstallments, sweep)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: ":" + cfg.App.Port, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("component", "main").Msg("metrics listener stopped")
		}
	}()

	sched.Start()
	log.Info().Str("component", "main").Str("spec", cfg.Reminders.Cron).Str("tz", loc.String()).Msg("reminder scheduler started")

	<-ctx.Done()
	log.Info().Str("component", "main").Msg("stopping scheduler")
	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
