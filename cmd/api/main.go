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
	"github.com/tu-usuario/techreview-api/internal/application/auth"
	appcomparison "github.com/tu-usuario/techreview-api/internal/application/comparison"
	"github.com/tu-usuario/techreview-api/internal/application/usecase"
	"github.com/tu-usuario/techreview-api/internal/infrastructure/objectstore"
	infrapdf "github.com/tu-usuario/techreview-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/techreview-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/techreview-api/internal/interfaces/http"
	"github.com/tu-usuario/techreview-api/pkg/config"
	"github.com/tu-usuario/techreview-api/pkg/logger"
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

	imageStore, err := objectstore.NewMinioStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al object storage")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	technologyRepo := postgres.NewTechnologyRepository(pool)
	attrRepo := postgres.NewComparisonAttributeRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, imageStore)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, technologyRepo, imageStore)
	technologyUC := usecase.NewTechnologyUseCase(technologyRepo, categoryRepo, imageStore)
	comparisonUC := appcomparison.NewUseCase(
		attrRepo, technologyRepo, categoryRepo, txRunner, pdfGenerator, imageStore,
	)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, technologyRepo, userRepo)
	articleUC := usecase.NewArticleUseCase(articleRepo, technologyRepo, categoryRepo, userRepo, imageStore)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, technologyRepo, categoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TechReview API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		CategoryUC:   categoryUC,
		TechnologyUC: technologyUC,
		ComparisonUC: comparisonUC,
		ReviewUC:     reviewUC,
		ArticleUC:    articleUC,
		FavoriteUC:   favoriteUC,
		JWTSecret:    cfg.JWT.Secret,
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
