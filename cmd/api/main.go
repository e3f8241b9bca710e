package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"bls-chart/internal/api/handlers"
	"bls-chart/internal/api/middleware"
	"bls-chart/internal/config"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Optional base config; request fields override it per call.
	var cfg *config.Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded base config from %s", path)
	} else {
		cfg = config.Default()
		log.Printf("No CONFIG_FILE set, using built-in defaults")
	}

	// Note: the BLS registration key is passed through from client requests;
	// the server holds no key of its own.

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	chartHandler := handlers.NewChartHandler(cfg)
	seriesHandler := handlers.NewSeriesHandler(cfg)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/chart", chartHandler.RenderChart)
		api.POST("/export", chartHandler.ExportCSV)

		api.GET("/series", seriesHandler.ListSeries)
		api.GET("/recessions", seriesHandler.ListRecessions)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
