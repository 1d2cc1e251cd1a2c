package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tu-usuario/pizzeria-pro/internal/application/analytics"
	"github.com/tu-usuario/pizzeria-pro/internal/application/auth"
	"github.com/tu-usuario/pizzeria-pro/internal/application/ordering"
	"github.com/tu-usuario/pizzeria-pro/internal/application/receipts"
	"github.com/tu-usuario/pizzeria-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/pizzeria-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/pizzeria-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/pizzeria-pro/internal/interfaces/http"
	"github.com/tu-usuario/pizzeria-pro/internal/migrate"
	"github.com/tu-usuario/pizzeria-pro/pkg/config"
	"github.com/tu-usuario/pizzeria-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	pizzaRepo := postgres.NewPizzaRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	pizzaUC := usecase.NewPizzaUseCase(pizzaRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	orderUC := ordering.NewOrderUseCase(txRunner, orderRepo, pizzaRepo, ordering.Config{
		DefaultTaxRateBps: int64(cfg.Order.TaxRateBps),
		PersistTimeout:    cfg.Order.PlaceTimeout,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := receipts.NewPDFUseCase(orderRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pizzería Pro API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		PizzaUC:     pizzaUC,
		EmployeeUC:  employeeUC,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
