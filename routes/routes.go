package routes

import (
	"springshop/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Catalog Routes ---
	catalog := api.Group("/catalog")
	catalog.Get("/categories", handlers.HandleListCategories)
	catalog.Get("/categories/:categoryId/products", handlers.HandleListByCategory)
	catalog.Get("/products/top-selling", handlers.HandleTopSelling)
	catalog.Get("/products/new-arrivals", handlers.HandleNewArrivals)
	catalog.Get("/products/search", handlers.HandleSearchProducts)

	// --- Assistant Routes ---
	assistant := api.Group("/assistant")
	assistant.Post("/sessions", handlers.HandleOpenChatSession)
	assistant.Get("/sessions/:sessionId/messages", handlers.HandleGetChatTranscript)
	assistant.Post("/sessions/:sessionId/messages", handlers.HandleSendChatMessage)

	// --- Browse Session Routes ---
	browse := api.Group("/browse")
	browse.Post("/sessions", handlers.HandleCreateBrowseSession)
	browse.Get("/sessions/:sessionId", handlers.HandleGetBrowseSession)
	browse.Post("/sessions/:sessionId/select-category", handlers.HandleSelectCategory)
	browse.Post("/sessions/:sessionId/apply-filters", handlers.HandleApplyFilters)
	browse.Post("/sessions/:sessionId/go-home", handlers.HandleGoHome)
}
