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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/application/usecase"
	infracache "github.com/jhoicas/pos-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-api/internal/interfaces/http"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
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

	// Los montos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepo(pool)
	categoryRepo := postgres.NewCategoryRepo(pool)
	customerRepo := postgres.NewCustomerRepo(pool)
	storeRepo := postgres.NewStoreRepo(pool)
	accountRepo := postgres.NewAccountRepo(pool)
	supplierRepo := postgres.NewSupplierRepo(pool)
	registerRepo := postgres.NewRegisterRepo(pool)
	sourceRepo := postgres.NewSourceRepo(pool)
	documentRepo := postgres.NewDocumentRepo(pool)
	shiftRepo := postgres.NewShiftRepo(pool)
	counterRepo := postgres.NewCounterRepo(pool)
	moneyRepo := postgres.NewMoneyMovementRepo(pool)
	statsRepo := postgres.NewStatsRepo(pool)
	userRepo := postgres.NewUserRepo(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de estadísticas: Redis si está configurado, si no un no-op.
	var statsCache infracache.StatsCache = infracache.NewNoopStatsCache()
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		statsCache = infracache.NewRedisStatsCache(rdb, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché Redis habilitado")
	}

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	registerUC := usecase.NewRegisterUseCase(registerRepo)
	sourceUC := usecase.NewSourceUseCase(sourceRepo)
	documentUC := usecase.NewDocumentUseCase(documentRepo, txRunner, statsCache, log)
	searchUC := usecase.NewSearchUseCase(documentRepo, productRepo, storeRepo, customerRepo, moneyRepo)
	shiftUC := usecase.NewShiftUseCase(shiftRepo, counterRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, statsCache)
	authUC := usecase.NewAuthUseCase(userRepo, cfg, log)

	receiptGen := infrapdf.NewReceiptGenerator()
	receiptUC := usecase.NewReceiptUseCase(documentRepo, productRepo, storeRepo, receiptGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CustomerUC: customerUC,
		StoreUC:    storeUC,
		AccountUC:  accountUC,
		SupplierUC: supplierUC,
		RegisterUC: registerUC,
		SourceUC:   sourceUC,
		DocumentUC: documentUC,
		ReceiptUC:  receiptUC,
		SearchUC:   searchUC,
		ShiftUC:    shiftUC,
		StatsUC:    statsUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
		Defaults:   cfg.Auth,
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
