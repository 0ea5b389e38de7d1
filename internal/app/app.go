package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Adarshcode-012/ActivityHub/internal/auth"
	"github.com/Adarshcode-012/ActivityHub/internal/broker"
	"github.com/Adarshcode-012/ActivityHub/internal/config"
	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/handler"
	"github.com/Adarshcode-012/ActivityHub/internal/middleware"
	"github.com/Adarshcode-012/ActivityHub/internal/notification"
	"github.com/Adarshcode-012/ActivityHub/internal/repository"
	"github.com/Adarshcode-012/ActivityHub/internal/router"
	"github.com/Adarshcode-012/ActivityHub/internal/scheduler"
	"github.com/Adarshcode-012/ActivityHub/internal/seed"
	"github.com/Adarshcode-012/ActivityHub/internal/service"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	publisher  *broker.Publisher
	bookings   *service.BookingService
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	seeder     *seed.Seeder
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ActivityHub",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		_ = app.db.Master.Close()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	activityRepo := repository.NewActivityRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer, a.cfg.Auth.TokenTTL)
	hasher := auth.NewBcryptHasher(a.cfg.Auth.BcryptCost)

	telegram, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}

	a.publisher, err = broker.NewPublisher(a.cfg.Rabbit.URL, a.cfg.Rabbit.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init rabbitmq publisher: %w", err)
	}

	notifier := notification.Fanout{telegram, a.publisher}

	activityService := service.NewActivityService(activityRepo, a.log)
	userService := service.NewUserService(userRepo, hasher)
	authService := service.NewAuthService(userRepo, hasher, tokens, a.log)
	bookingService := service.NewBookingService(bookingRepo, activityRepo, userRepo, notifier, a.log)
	a.bookings = bookingService

	a.scheduler = scheduler.New(
		activityService,
		a.cfg.Scheduler.Interval,
		a.log,
	)
	a.seeder = seed.New(userService, activityService, a.log)

	h := handler.NewHandler(activityService, bookingService, authService, userService)
	r := router.InitRouter(
		router.Options{
			Mode:         a.cfg.Gin.Mode,
			AllowOrigins: a.cfg.CORS.AllowOrigins,
			Verifier:     tokens,
		},
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		stop()
		_ = a.Close()
		return err
	}

	return a.shutdown()
}

// Seed creates the configured accounts and sample activities.
func (a *App) Seed(ctx context.Context) error {
	var accounts []domain.CreateUserInput

	sc := a.cfg.Seed
	if sc.AdminPassword != "" {
		accounts = append(accounts, domain.CreateUserInput{
			Name:     sc.AdminName,
			Email:    sc.AdminEmail,
			Password: sc.AdminPassword,
			Role:     domain.RoleAdmin,
		})
	} else {
		a.log.Warn("SEED_ADMIN_PASSWORD is empty, admin account not seeded")
	}
	if sc.UserEmail != "" {
		accounts = append(accounts, domain.CreateUserInput{
			Name:     sc.UserName,
			Email:    sc.UserEmail,
			Password: sc.UserPassword,
			Role:     domain.RoleUser,
		})
	}

	if err := a.seeder.Run(ctx, accounts); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	a.log.Info("seed completed")
	return nil
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.bookings.Wait(shutdownCtx); err != nil {
		a.log.Warn("pending notifications not drained", logger.String("error", err.Error()))
	}

	if err := a.Close(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// Close releases the broker connection and the database pool.
func (a *App) Close() error {
	if err := a.publisher.Close(); err != nil {
		a.log.Error("close rabbitmq publisher", logger.String("error", err.Error()))
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, a.cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
