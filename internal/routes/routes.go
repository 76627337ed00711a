package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/shelftrack/shelftrack-server/internal/config"
	"github.com/shelftrack/shelftrack-server/internal/handlers"
	"github.com/shelftrack/shelftrack-server/internal/middleware"
	"github.com/shelftrack/shelftrack-server/internal/models"
	"github.com/shelftrack/shelftrack-server/internal/services"
	"gorm.io/gorm"
)

// Setup mounts everything under /api. Auth and health are public;
// every entity route carries the JWT middleware on its group.
func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	healthHandler := handlers.NewHealthHandler()
	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter 10 req/min limit
	authHandler := handlers.NewAuthHandler(services.NewAuthService(db, cfg))
	authLimit := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/register", authLimit, authHandler.Register)
	api.Post("/login", authLimit, authHandler.Login)
	api.Post("/refresh", authLimit, authHandler.Refresh)

	jwt := middleware.JWTProtected(cfg)
	api.Post("/logout", jwt, authHandler.Logout)

	// Media collections share one generic handler
	bookHandler := handlers.NewMediaHandler(services.NewMediaService[models.Book, *models.Book](db), "/api/books")
	movieHandler := handlers.NewMediaHandler(services.NewMediaService[models.Movie, *models.Movie](db), "/api/movies")
	songHandler := handlers.NewMediaHandler(services.NewMediaService[models.Song, *models.Song](db), "/api/songs")

	mediaRoutes(api.Group("/books", jwt), bookHandler)
	mediaRoutes(api.Group("/movies", jwt), movieHandler)
	mediaRoutes(api.Group("/songs", jwt), songHandler)

	todoHandler := handlers.NewTodoHandler(services.NewTodoService(db))
	todos := api.Group("/todos", jwt)
	todos.Get("/", todoHandler.List)
	todos.Get("/:id", todoHandler.Get)
	todos.Post("/", todoHandler.Create)
	todos.Put("/:id", todoHandler.Update)
	todos.Patch("/:id/toggle", todoHandler.Toggle)
	todos.Delete("/:id", todoHandler.Delete)

	categoryHandler := handlers.NewCategoryHandler(services.NewCategoryService(db))
	categories := api.Group("/categories", jwt)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:slug", categoryHandler.GetBySlug)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Get("/:slug/items", categoryHandler.ListItems)
	categories.Post("/:slug/items", categoryHandler.CreateItem)
	categories.Put("/:slug/items/:id", categoryHandler.UpdateItem)
	categories.Delete("/:slug/items/:id", categoryHandler.DeleteItem)

	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(db))
	api.Get("/dashboard", jwt, dashboardHandler.Overview)
}

func mediaRoutes[T any, PT models.TrackedPtr[T]](r fiber.Router, h *handlers.MediaHandler[T, PT]) {
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}
