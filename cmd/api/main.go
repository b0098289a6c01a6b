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
	"github.com/jmoreiradev/fardamento-api/internal/application/auth"
	"github.com/jmoreiradev/fardamento-api/internal/application/damage"
	"github.com/jmoreiradev/fardamento-api/internal/application/movement"
	"github.com/jmoreiradev/fardamento-api/internal/application/usecase"
	"github.com/jmoreiradev/fardamento-api/internal/infrastructure/postgres"
	infraredis "github.com/jmoreiradev/fardamento-api/internal/infrastructure/redis"
	httpRouter "github.com/jmoreiradev/fardamento-api/internal/interfaces/http"
	"github.com/jmoreiradev/fardamento-api/pkg/config"
	"github.com/jmoreiradev/fardamento-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	itemTypeRepo := postgres.NewItemTypeRepository(pool)
	itemVariantRepo := postgres.NewItemVariantRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	balanceRepo := postgres.NewEmployeeBalanceRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	damageRepo := postgres.NewDamageRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache do dashboard: opcional, REDIS_ADDR vazio desliga.
	var cache usecase.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err := infraredis.New(cfg.Redis.Addr)
		if err != nil {
			log.Warn().Err(err).Msg("Redis indisponível, dashboard sem cache")
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}

	locationUC := usecase.NewLocationUseCase(locationRepo)
	itemUC := usecase.NewItemUseCase(itemTypeRepo, itemVariantRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, locationRepo, balanceRepo)
	stockUC := usecase.NewStockQueryUseCase(stockRepo, locationRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, cache)
	movementUC := movement.NewUseCase(txRunner, movementRepo, balanceRepo, locationRepo, itemVariantRepo, employeeRepo)
	damageUC := damage.NewUseCase(txRunner, movementRepo, damageRepo, itemVariantRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fardamento API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LocationUC:  locationUC,
		ItemUC:      itemUC,
		EmployeeUC:  employeeUC,
		StockUC:     stockUC,
		DashboardUC: dashboardUC,
		MovementUC:  movementUC,
		DamageUC:    damageUC,
		AuthUC:      authUC,
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

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
