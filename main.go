package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"springshop/assistant"
	"springshop/catalog"
	"springshop/config"
	"springshop/handlers"
	"springshop/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	config.Load()

	// Seed the in-memory catalog. Orphaned products (unknown category id)
	// are quarantined at load time and never served.
	cat := catalog.NewDemo(config.AppConfig.MockLatency)
	for _, p := range cat.Quarantined() {
		log.Printf("Quarantined product %d (%s): unknown category %d", p.ProductID, p.ProductName, p.CategoryID)
	}

	// Set up the assistant bridge. Without an API key the catalog endpoints
	// still work; the assistant endpoints answer 503.
	var bridge *assistant.Bridge
	if config.AppConfig.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is not set, assistant endpoints disabled")
	} else {
		bridge, err = assistant.NewBridge(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			log.Fatalf("Unable to create assistant bridge: %v", err)
		}
		defer bridge.Close()
	}

	handlers.Setup(cat, bridge)

	app := fiber.New()

	// Add middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
