package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/kiddovents/kiddovents/internal/config"
	"github.com/kiddovents/kiddovents/internal/handler"
	"github.com/kiddovents/kiddovents/internal/mailer"
	"github.com/kiddovents/kiddovents/internal/middleware"
	"github.com/kiddovents/kiddovents/internal/notification"
	"github.com/kiddovents/kiddovents/internal/payment/momo"
	"github.com/kiddovents/kiddovents/internal/queue"
	"github.com/kiddovents/kiddovents/internal/repository"
	"github.com/kiddovents/kiddovents/internal/router"
	"github.com/kiddovents/kiddovents/internal/service"
	"github.com/kiddovents/kiddovents/internal/service/ports"
	"github.com/kiddovents/kiddovents/internal/ticket"
	"github.com/kiddovents/kiddovents/internal/worker"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	migrationsDir = "migrations"
	qrSize        = 256
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	broker     *queue.Broker
	worker     *worker.FulfillmentWorker
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"kiddovents",
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
		app.closeResources()
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
	eventRepo := repository.NewEventRepo(a.db)
	packageRepo := repository.NewPackageRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)

	gateway := momo.NewClient(momo.Config{
		Environment:       a.cfg.MoMo.Environment,
		BaseURL:           a.cfg.MoMo.BaseURL,
		APIUser:           a.cfg.MoMo.APIUser,
		APIKey:            a.cfg.MoMo.APIKey,
		SubscriptionKey:   a.cfg.MoMo.SubscriptionKey,
		TargetEnvironment: a.cfg.MoMo.TargetEnvironment,
		Currency:          a.cfg.MoMo.Currency,
		Timeout:           a.cfg.MoMo.Timeout,
	}, a.tokenCache(), a.log)

	smtp, err := mailer.New(mailer.Config{
		Host:     a.cfg.Mail.Host,
		Port:     a.cfg.Mail.Port,
		Username: a.cfg.Mail.Username,
		Password: a.cfg.Mail.Password,
		From:     a.cfg.Mail.From,
		Timeout:  a.cfg.Mail.Timeout,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	fulfillment := service.NewFulfillmentService(
		bookingRepo,
		eventRepo,
		packageRepo,
		ticket.NewQREncoder(qrSize),
		smtp,
		a.cfg.Fulfillment.Timeout,
		a.log,
	)

	var dispatcher ports.TicketDispatcher = fulfillment
	if a.cfg.Fulfillment.Mode == config.FulfillmentQueue {
		broker, err := queue.New(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.cfg.RabbitMQ.Queue)
		if err != nil {
			return fmt.Errorf("init broker: %w", err)
		}
		a.broker = broker
		a.worker = worker.New(broker, fulfillment, a.cfg.Fulfillment.Timeout, a.log)
		dispatcher = broker
	}

	eventService := service.NewEventService(eventRepo)
	packageService := service.NewPackageService(packageRepo)
	bookingService := service.NewBookingService(
		bookingRepo,
		eventRepo,
		packageRepo,
		gateway,
		dispatcher,
		n,
		a.cfg.CallbackURL(),
		a.log,
	)

	h := handler.NewHandler(eventService, packageService, bookingService, a.log)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Webhook{
			Path: a.cfg.Webhook.Path,
			Auth: middleware.WebhookAuth(a.cfg.Webhook.Secret, a.log),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.AllowOrigins),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	a.log.Info("services initialized",
		logger.String("fulfillment_mode", a.cfg.Fulfillment.Mode),
		logger.String("momo_environment", a.cfg.MoMo.Environment),
	)

	return nil
}

// tokenCache shares MoMo tokens through Redis when it is configured.
func (a *App) tokenCache() momo.TokenCache {
	if a.cfg.Redis.Addr == "" {
		return momo.NewMemoryTokenCache()
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := a.redis.Ping(context.Background()).Err(); err != nil {
		a.log.Warn("redis unreachable, token cache degrades to per-call exchange",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
	}

	return momo.NewRedisTokenCache(a.redis, a.log)
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)

	if a.worker != nil {
		go func() {
			if err := a.worker.Start(ctx); err != nil {
				errCh <- fmt.Errorf("fulfillment worker: %w", err)
			}
		}()
	}

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
		a.closeResources()
		return err
	}

	return a.shutdown()
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

	a.closeResources()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeResources() {
	if a.broker != nil {
		if err := a.broker.Close(); err != nil {
			a.log.Warn("close broker", logger.String("error", err.Error()))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}
	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.Warn("close db", logger.String("error", err.Error()))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
	}
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
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
