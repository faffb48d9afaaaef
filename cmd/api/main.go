package main

import (
	"fmt"
	"log"

	_ "github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/docs"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/adapter/gemini"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/adapter/repository/postgres"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/delivery/http/handler"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/usecase/chatbot"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/pkg/config"
	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/pkg/database"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	// middleware
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// @title           BE-PROFILE-MEEE API
// @version         1.0
// @description     Profile chatbot backend: document chunking, embedding and similarity-based retrieval
// @host            localhost:5000
// @BasePath        /
func main() {
	cfg := config.Load()

	// connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("connected to database")

	// initialize gemini clients
	embeddingClient := gemini.NewEmbeddingClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.EmbeddingModel, cfg.EmbedTimeout)
	chatClient := gemini.NewChatClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.ChatModel)
	if !chatClient.Available() {
		log.Println("GEMINI_API_KEY not set, AI responses will be disabled")
	}

	// initialize repository
	docRepo := postgres.NewDocumentRepository(db)

	// initialize usecase
	chatbotUsecase := chatbot.NewChatbotUsecase(
		docRepo,
		embeddingClient,
		chatClient,
		cfg.MergeThreshold,
		cfg.HistoryLimit,
	)

	// initialize handler
	chatbotHandler := handler.NewChatbotHandler(chatbotUsecase, cfg.MatchThreshold, cfg.MatchCount)

	// initialize fiber app
	app := fiber.New()

	// middleware for log request and response in terminal
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger route
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"message": "Chatbot API is running",
		})
	})

	// chat routes
	api := app.Group("/api")
	api.Post("/chat", chatbotHandler.Chat)
	api.Get("/chat/history", chatbotHandler.History)

	// retrieval routes
	api.Post("/query", chatbotHandler.Query)

	// ingestion routes
	api.Post("/ingest", chatbotHandler.Ingest)
	api.Post("/documents/upload", chatbotHandler.Upload)

	// system routes
	api.Get("/test-connection", chatbotHandler.TestConnection)
	api.Post("/cache/clear", chatbotHandler.ClearCache)

	// Start server
	log.Printf("🚀 Server starting on port %d", cfg.Port)
	log.Printf("📚 Swagger UI: http://localhost:%d/swagger/index.html", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
