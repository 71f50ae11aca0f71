/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/study-buddy-be/config"
	"github.com/tieubaoca/study-buddy-be/handler"
	"github.com/tieubaoca/study-buddy-be/repository"
	"github.com/tieubaoca/study-buddy-be/service"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the study buddy server",
	Long:  `Starts the HTTP server that handles uploads, note/quiz generation and tutor chat`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		aiService := newAIService(cfg)
		pdfService := service.NewPDFService()
		materialRepo := repository.NewInMemoryMaterialRepo()
		studyService := service.NewStudyService(materialRepo, pdfService, aiService)
		wsService := service.NewWebSocketService(studyService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(studyService)
		studyHandler := handler.NewStudyHandler(studyService)
		chatHandler := handler.NewChatHandler(studyService)
		materialHandler := handler.NewMaterialHandler(studyService)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Welcome to AI Study Buddy API"})
		})
		router.Static("/static", cfg.StaticDir)

		api := router.Group("/api")
		{
			api.POST("/upload", uploadHandler.HandleUpload)
			api.POST("/generate-notes", studyHandler.HandleGenerateNotes)
			api.POST("/generate-quiz", studyHandler.HandleGenerateQuiz)
			api.POST("/chat", chatHandler.HandleChat)
			api.GET("/materials", materialHandler.HandleListMaterials)
			api.GET("/material/:material_id", materialHandler.HandleGetMaterial)
		}

		router.GET("/ws/chat", func(c *gin.Context) {
			wsService.HandleChat(c.Writer, c.Request)
		})

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// newAIService picks the provider from config. A missing API key is not
// fatal: the server still serves upload/list/get, and the generation
// endpoints report the model as unconfigured.
func newAIService(cfg *config.Config) service.AIService {
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			log.Println("OPENAI_API_KEY not set, generation endpoints disabled")
			return nil
		}
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model)
	default:
		if cfg.GeminiAPIKey == "" {
			log.Println("GEMINI_API_KEY not set, generation endpoints disabled")
			return nil
		}
		geminiService, err := service.NewGeminiService(cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		return geminiService
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
