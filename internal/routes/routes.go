package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/wallet-pay/wallet_pay/internal/config"
	"github.com/wallet-pay/wallet_pay/internal/customer"
	"github.com/wallet-pay/wallet_pay/internal/ledger"
	"github.com/wallet-pay/wallet_pay/internal/middleware"
	"github.com/wallet-pay/wallet_pay/internal/notification"
	"github.com/wallet-pay/wallet_pay/internal/payment"
	"github.com/wallet-pay/wallet_pay/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. With a nil DB the
// service runs on in-memory stores, which is only allowed in development.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.Env)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.Env)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var ledgerStore ledger.Store
	if d.DB != nil {
		ledgerStore = ledger.NewPostgresStore(d.DB)
	} else {
		ledgerStore = ledger.NewInMemory()
	}

	var customerRepo customer.Repository
	if d.DB != nil {
		customerRepo = customer.NewPostgresRepository(d.DB)
	} else {
		customerRepo = customer.NewMemoryRepository()
	}
	customerSvc := customer.NewService(customerRepo)

	var paymentRepo payment.Repository
	if d.DB != nil {
		paymentRepo = payment.NewPostgresRepository(d.DB)
	} else {
		paymentRepo = payment.NewMemoryRepository()
	}

	var notifier notification.Notifier
	if d.Cfg.SMTPAddr != "" {
		notifier = notification.NewSMTPNotifier(d.Cfg.SMTPAddr, d.Cfg.SMTPFrom)
	} else {
		notifier = notification.NewLoggerNotifier(d.Logger)
	}

	walletSvc := wallet.NewService(customerSvc, ledgerStore)
	paymentSvc := payment.NewService(paymentRepo, customerSvc, ledgerStore, notifier, d.Logger)

	customerHandler := customer.NewHandler(customerSvc)
	walletHandler := wallet.NewHandler(walletSvc)
	paymentHandler := payment.NewHandler(paymentSvc)

	api := app.Group("/api/v1")
	RegisterCustomerRoutes(api, customerHandler)
	RegisterWalletRoutes(api, walletHandler)
	RegisterPaymentRoutes(api, paymentHandler)

	return nil
}
