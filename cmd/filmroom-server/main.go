package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/filmroom/filmroom/pkg/filmroom/analytics"
	"github.com/filmroom/filmroom/pkg/filmroom/auth"
	"github.com/filmroom/filmroom/pkg/filmroom/comments"
	"github.com/filmroom/filmroom/pkg/filmroom/content"
	"github.com/filmroom/filmroom/pkg/filmroom/database"
	"github.com/filmroom/filmroom/pkg/filmroom/health"
	"github.com/filmroom/filmroom/pkg/filmroom/models"
	"github.com/filmroom/filmroom/pkg/filmroom/redirect"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/filmroom/filmroom/api/swagger"
)

// @title Filmroom API
// @version 1.0
// @description Coaching content sharing: coaches post training links, players watch, comment and like, coaches track engagement.

// @host localhost:8080
// @BasePath /api

func main() {
	// Load .env file if present; fall back to the process environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	dbPath := os.Getenv("FILMROOM_DB_PATH")
	if dbPath == "" {
		dbPath = "filmroom.db"
	}

	if err := database.Connect(dbPath); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Request/error sampler with a one-hour window, pruned once per minute
	metrics := health.NewMetrics(time.Hour)
	metrics.StartPruning(make(chan struct{}))

	r := gin.Default()
	r.Use(metrics.Middleware())

	// Liveness probe for load balancers; the coach-facing snapshot lives
	// under /api/health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		authHandler := auth.NewHandler(database.GetDB())
		authHandler.RegisterRoutes(api.Group("/auth"))

		session := api.Group("", auth.SessionRequired())

		contentHandler := content.NewHandler(database.GetDB())
		contentHandler.RegisterRoutes(session)

		commentsHandler := comments.NewHandler(database.GetDB())
		commentsHandler.RegisterRoutes(session)

		analyticsHandler := analytics.NewHandler(database.GetDB())
		analyticsHandler.RegisterRoutes(session)

		healthHandler := health.NewHandler(database.GetDB(), metrics)
		healthHandler.RegisterRoutes(session)
	}

	// Serve the SPA build if web/dist exists
	webDistPath := "./web/dist"
	if _, err := os.Stat(webDistPath); err == nil {
		r.Static("/assets", filepath.Join(webDistPath, "assets"))
		r.StaticFile("/favicon.ico", filepath.Join(webDistPath, "favicon.ico"))

		indexHTML := filepath.Join(webDistPath, "index.html")
		spaRoutes := []string{"/", "/login", "/register", "/library", "/analytics"}
		for _, route := range spaRoutes {
			r.GET(route, func(c *gin.Context) {
				c.File(indexHTML)
			})
		}
		r.GET("/library/*path", func(c *gin.Context) {
			c.File(indexHTML)
		})

		log.Println("Serving frontend from ./web/dist")
	} else {
		log.Println("No frontend build found at ./web/dist - API only mode")
	}

	// Click-through redirects (registered last to avoid conflicts)
	redirectHandler := redirect.NewHandler(database.GetDB())
	redirectHandler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting filmroom server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
