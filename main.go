package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-registry-api/config"
	"cafe-registry-api/handlers"
	"cafe-registry-api/middleware"
	"cafe-registry-api/routes"
	"cafe-registry-api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	log.Println("Database connected and migrated")

	cafes := store.NewCafeStore(db)
	h := handlers.NewHandler(cafes)

	// Default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Cafe Registry API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Cafe Registry API",
			"health":  "/health",
			"endpoints": []string{
				"/random", "/all", "/search?loc=", "/add",
				"/update-price/:id", "/report-closed/:id",
			},
		})
	})

	routes.SetupRoutes(r, h, cfg.APIKey)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
