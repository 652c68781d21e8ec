package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	appService "berries/internal/application/service"
	"berries/internal/infrastructure/database/sqlite"
	lineClient "berries/internal/infrastructure/line"
	"berries/internal/infrastructure/scheduler"
	"berries/internal/interfaces/api/handler"
	"berries/internal/interfaces/api/router"
	"berries/internal/pkg/config"
	appLogger "berries/internal/pkg/logger"
	"berries/internal/pkg/metrics"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the reminder scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// NewRemindCommand creates the remind command
func NewRemindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run one reminder cycle and exit",
		Long:  "Notify the owners of all due berries and reschedule them once, for use with an external scheduler.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemind(cmd.Context())
		},
	}
}

// NewTokenCommand creates the token command
func NewTokenCommand() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, _ := cmd.Flags().GetString("owner")
			admin, _ := cmd.Flags().GetBool("admin")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if owner == "" {
				return errors.New("--owner is required")
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			tok, err := handler.IssueToken(cfg.Auth.JWTSecret, cfg.Auth.Issuer, owner, admin, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	tokenCmd.Flags().String("owner", "", "Owner id placed in the token subject (required)")
	tokenCmd.Flags().Bool("admin", false, "Grant access to the berries of all owners")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	return tokenCmd
}

// app holds the components shared by serve and remind.
type app struct {
	cfg        *config.Config
	log        appLogger.Logger
	db         *gorm.DB
	metrics    *metrics.Metrics
	dispatcher appService.Dispatcher
}

func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	log, err := appLogger.New(appLogger.Config{Level: cfg.Logger.Level, Format: cfg.Logger.Format})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := sqlite.NewDB(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	notifier, err := newNotifier(cfg, db, log)
	if err != nil {
		_ = sqlite.CloseDB(db)
		return nil, err
	}
	dispatcher := appService.NewDispatcher(sqlite.NewBerryRepository(db), notifier, log, appService.WithMetrics(m))

	return &app{cfg: cfg, log: log, db: db, metrics: m, dispatcher: dispatcher}, nil
}

func newNotifier(cfg *config.Config, db *gorm.DB, log appLogger.Logger) (appService.Notifier, error) {
	if cfg.Reminder.Notifier != config.NotifierPush {
		log.Info("Reminders are written to the log only.")
		return appService.NewLogNotifier(log), nil
	}
	client, err := lineClient.NewClient(cfg.Line, log)
	if err != nil {
		return nil, err
	}
	return appService.NewPushNotifier(client, sqlite.NewPushRecipientRepository(db), log), nil
}

func (a *app) close() {
	if err := sqlite.CloseDB(a.db); err != nil {
		a.log.Error("Error closing database", err)
	}
	_ = appLogger.Sync(a.log)
}

func runRemind(ctx context.Context) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if ctx == nil {
		ctx = context.Background()
	}
	report := a.dispatcher.Remind(ctx)
	if report.ScanFailed {
		return errors.New("reminder cycle could not scan for due berries")
	}
	return nil
}

func gracefulShutdown(a *app, apiServer *http.Server, schedulerSvc appService.SchedulerService, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	a.log.Info("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first so no cycle writes after the database is closed.
	schedulerSvc.Stop()
	a.log.Info("Scheduler stopped.")

	// The server has 5 seconds to finish the requests it is currently handling.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		a.log.Error("Server forced to shutdown", err)
	}

	a.log.Info("Server exiting")
	done <- true
}

func runServer() error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()
	cfg, log := a.cfg, a.log

	// --- Application Services ---
	berrySvc := appService.NewBerryService(sqlite.NewBerryRepository(a.db), log)
	todoSvc := appService.NewTodoService(sqlite.NewTodoRepository(a.db), log)
	recipientSvc := appService.NewPushRecipientService(sqlite.NewPushRecipientRepository(a.db), log)
	schedulerSvc := appService.NewSchedulerService(scheduler.NewScheduler(log), a.dispatcher, cfg.Reminder.Cron, log)

	if err := schedulerSvc.Start(context.Background()); err != nil {
		return err
	}

	// --- Router ---
	echoRouter := router.NewRouter(&router.Config{
		BerryHandler:         handler.NewBerryHandler(berrySvc, log),
		TodoHandler:          handler.NewTodoHandler(todoSvc, log),
		PushRecipientHandler: handler.NewPushRecipientHandler(recipientSvc),
		HealthHandler:        handler.NewHealthHandler(func() error { return sqlite.Ping(a.db) }, log),
		Logger:               log,
		Metrics:              a.metrics,
		JWTSecret:            cfg.Auth.JWTSecret,
		JWTIssuer:            cfg.Auth.Issuer,
		RateLimit:            cfg.Security.RateLimit,
	})

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      echoRouter,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	done := make(chan bool, 1)
	go gracefulShutdown(a, apiServer, schedulerSvc, done)

	log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		schedulerSvc.Stop()
		return fmt.Errorf("http server error: %w", err)
	}

	<-done
	log.Info("Graceful shutdown complete.")
	return nil
}
