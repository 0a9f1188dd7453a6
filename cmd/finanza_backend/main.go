package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/finanza-app/finanza-backend/internal/adapters/database/sqlite"
	"github.com/finanza-app/finanza-backend/internal/adapters/gemini"
	"github.com/finanza-app/finanza-backend/internal/core/domain"
	portssvc "github.com/finanza-app/finanza-backend/internal/core/ports/services"
	"github.com/finanza-app/finanza-backend/internal/core/services"
	"github.com/finanza-app/finanza-backend/internal/handlers"
	"github.com/finanza-app/finanza-backend/internal/middleware"
	"github.com/finanza-app/finanza-backend/pkg/config"
	"github.com/finanza-app/finanza-backend/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.SQLitePath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied")

	db, err := database.Open(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Error("Failed to create Gemini client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories
	accountRepo := sqlite.NewAccountRepository(db)
	txnRepo := sqlite.NewTransactionRepository(db)
	billRepo := sqlite.NewBillRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	prefRepo := sqlite.NewPreferenceRepository(db)

	// Services
	ratesService := services.NewRatesService(geminiClient)
	ratesService.StartRefreshing(ctx, cfg.RateRefreshInterval)

	container := &portssvc.ServiceContainer{
		User:       services.NewUserService(userRepo, accountRepo),
		Token:      services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		Account:    services.NewAccountService(accountRepo, ratesService),
		Ledger:     services.NewLedgerService(txnRepo, ratesService),
		Bill:       services.NewBillService(billRepo, accountRepo, ratesService),
		Reporting:  services.NewReportingService(txnRepo, billRepo),
		Rates:      ratesService,
		Assistant:  geminiClient,
		Preference: services.NewPreferenceService(prefRepo),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	registerCurrencyValidator(logger)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// registerCurrencyValidator teaches the binding layer the `currencycode` tag
// used by request DTOs: the value must be one of the supported display
// currencies.
func registerCurrencyValidator(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn("Unexpected validator engine; currencycode validation disabled")
		return
	}
	_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, code := range domain.SupportedCurrencies {
			if value == code {
				return true
			}
		}
		return false
	})
}
