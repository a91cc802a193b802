package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	actorapp "github.com/muhammadheryan/restock/application/actor"
	catalogapp "github.com/muhammadheryan/restock/application/catalog"
	orderapp "github.com/muhammadheryan/restock/application/order"
	reconcileapp "github.com/muhammadheryan/restock/application/reconcile"
	"github.com/muhammadheryan/restock/cmd/config"
	redisclient "github.com/muhammadheryan/restock/cmd/redis"
	_ "github.com/muhammadheryan/restock/docs"
	"github.com/muhammadheryan/restock/migration"
	catalogRepo "github.com/muhammadheryan/restock/repository/catalog"
	orderRepo "github.com/muhammadheryan/restock/repository/order"
	redisRepo "github.com/muhammadheryan/restock/repository/redis"
	txRepo "github.com/muhammadheryan/restock/repository/tx"
	"github.com/muhammadheryan/restock/thirdparty/forecast"
	"github.com/muhammadheryan/restock/thirdparty/rabbitmq"
	"github.com/muhammadheryan/restock/transport"
	"github.com/muhammadheryan/restock/utils/logger"
	validatorx "github.com/muhammadheryan/restock/utils/validator"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title RESTOCK API
// @version 1.0
// @description Restock reconciliation and purchase order lifecycle API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:  "restock",
		Usage: "restock recommendation reconciliation and purchase order service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply or roll back the database schema",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "apply all pending migrations",
						Action: migrateUp,
					},
					{
						Name:  "down",
						Usage: "roll back migrations",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
						},
						Action: migrateDown,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and initializes the global logger.
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

func connectDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	return db, nil
}

func migrateUp(c *cli.Context) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

	db, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migration.Up(db.DB, cfg.Database.Name); err != nil {
		return err
	}
	logger.Info("migrations applied", zap.String("database", cfg.Database.Name))
	return nil
}

func migrateDown(c *cli.Context) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

	db, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	steps := c.Int("steps")
	if err := migration.Down(db.DB, cfg.Database.Name, steps); err != nil {
		return err
	}
	logger.Info("migrations rolled back", zap.String("database", cfg.Database.Name), zap.Int("steps", steps))
	return nil
}

func serve(c *cli.Context) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

	validatorx.Init()
	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// the vendor cache degrades to the database without redis
	if err := redisclient.New(ctx, cfg); err != nil {
		logger.Warn("redis unavailable, vendor cache disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	var publisher orderapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			return fmt.Errorf("connect rabbitmq: %w", err)
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	CatalogApp := catalogapp.NewCatalogApp(CatalogRepo, RedisRepo, cfg.Catalog.VendorCacheTTL)
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, CatalogRepo, publisher)
	ActorApp := actorapp.NewActorApp(cfg.Auth.JWTSecret)
	ReconcileApp := reconcileapp.NewReconcileApp(
		forecast.NewClient(cfg.Forecast.BaseURL, cfg.Forecast.Timeout),
		CatalogApp,
		OrderApp,
		reconcileapp.NewRegistry(cfg.Reconcile.SessionTTL),
		cfg.Catalog.EnrichmentConcurrency,
	)

	httpTransport := transport.NewTransport(ReconcileApp, OrderApp, CatalogApp, ActorApp, cfg.Internal.APIKey)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
