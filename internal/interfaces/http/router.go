package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/techreview-api/internal/application/auth"
	"github.com/tu-usuario/techreview-api/internal/application/comparison"
	"github.com/tu-usuario/techreview-api/internal/application/usecase"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	UserUC       *usecase.UserUseCase
	CategoryUC   *usecase.CategoryUseCase
	TechnologyUC *usecase.TechnologyUseCase
	ComparisonUC *comparison.UseCase
	ReviewUC     *usecase.ReviewUseCase
	ArticleUC    *usecase.ArticleUseCase
	FavoriteUC   *usecase.FavoriteUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Las lecturas del catálogo son públicas;
// la escritura del catálogo es solo admin; reviews y favoritos requieren
// cualquier usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	anyUser := RequireRole(entity.RoleAdmin, entity.RoleUser)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users")
	users.Get("/me", anyUser, userHandler.Me)
	users.Patch("/me", anyUser, userHandler.UpdateMe)
	users.Get("/", adminOnly, userHandler.List)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Categories (lectura pública, escritura admin)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories-with-technologies", categoryHandler.ListWithTechnologies)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Patch("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Technologies (lectura pública, escritura admin)
	technologyHandler := NewTechnologyHandler(deps.TechnologyUC)
	technologies := api.Group("/technologies")
	technologies.Get("/search", technologyHandler.Search)
	technologies.Get("/", technologyHandler.List)
	technologies.Get("/:id", technologyHandler.GetByID)
	technologies.Post("/", adminOnly, technologyHandler.Create)
	technologies.Patch("/:id", adminOnly, technologyHandler.Update)
	technologies.Delete("/:id", adminOnly, technologyHandler.Delete)

	// Motor de comparación (lectura pública)
	comparisonHandler := NewComparisonHandler(deps.ComparisonUC)
	api.Get("/comparison", comparisonHandler.Compare)
	api.Get("/comparison/pdf", comparisonHandler.ComparePDF)

	// Atributos de comparación (lectura pública, escritura admin)
	comparisons := api.Group("/comparisons")
	comparisons.Get("/", comparisonHandler.List)
	comparisons.Get("/:id", comparisonHandler.GetByID)
	comparisons.Post("/", adminOnly, comparisonHandler.Create)
	comparisons.Patch("/:id", adminOnly, comparisonHandler.Update)
	comparisons.Delete("/:id", adminOnly, comparisonHandler.Delete)

	// Reviews (lectura pública, escritura de usuarios autenticados)
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	reviews := api.Group("/reviews")
	reviews.Get("/", reviewHandler.List)
	reviews.Get("/:id", reviewHandler.GetByID)
	reviews.Post("/", anyUser, reviewHandler.Create)
	reviews.Patch("/:id", anyUser, reviewHandler.Update)
	reviews.Delete("/:id", anyUser, reviewHandler.Delete)

	// Articles (lectura pública, escritura admin)
	articleHandler := NewArticleHandler(deps.ArticleUC)
	articles := api.Group("/articles")
	articles.Get("/search", articleHandler.Search)
	articles.Get("/", articleHandler.List)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Post("/", adminOnly, articleHandler.Create)
	articles.Patch("/:id", adminOnly, articleHandler.Update)
	articles.Delete("/:id", adminOnly, articleHandler.Delete)

	// Favorites (usuario autenticado)
	favoriteHandler := NewFavoriteHandler(deps.FavoriteUC)
	favorites := api.Group("/favorites", anyUser)
	favorites.Get("/", favoriteHandler.Get)
	favorites.Post("/:techId", favoriteHandler.Add)
	favorites.Delete("/:techId", favoriteHandler.Remove)
}
