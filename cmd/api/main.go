package main

import (
	"context"
	"log"
	"os"
	"time"

	"foodielink/internal/auth"
	"foodielink/internal/db"
	"foodielink/internal/llm"
	"foodielink/internal/menu"
	"foodielink/internal/middleware"
	"foodielink/internal/places"
	"foodielink/internal/preferences"
	"foodielink/internal/restaurant"
	"foodielink/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GOOGLE_PLACES_API_KEY",
		"OPENAI_API_KEY",
		"OPENAI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	preferenceRepo := preferences.NewPostgresRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)

	// ───────────────────────── EXTERNAL CLIENTS ─────────────────────────
	placesClient := places.NewGoogleClient()
	llmClient := llm.NewOpenAIClient()

	// ───────────────────────── SERVICES ─────────────────────────
	preferenceService := preferences.NewService(preferenceRepo, userRepo)

	restaurantService := restaurant.NewService(
		restaurantRepo,
		placesClient,
		preferenceService,
	)

	menuService := menu.NewService(
		menuRepo,
		r2Client,
		restaurantRepo,
		preferenceService,
		llmClient,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	preferenceHandler := preferences.NewHandler(preferenceService)
	restaurantHandler := restaurant.NewHandler(restaurantService)
	menuHandler := menu.NewHandler(menuService)

	// ───────────────────────── PREFERENCE ROUTES ─────────────────────────
	prefs := r.Group("/preferences")
	prefs.Use(middleware.AuthMiddleware())
	{
		prefs.GET("", preferenceHandler.Get)
		prefs.PUT("", preferenceHandler.Save)
	}

	// ───────────────────────── RESTAURANT ROUTES ─────────────────────────
	restaurants := r.Group("/restaurants")
	restaurants.Use(middleware.AuthMiddleware())
	{
		restaurants.POST("/import", restaurantHandler.Import)
		restaurants.GET("/me", restaurantHandler.ListSaved)
		restaurants.GET("/:id/match", restaurantHandler.Match)
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/menus")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.POST("/:restaurant_id/photo", menuHandler.UploadPhoto)
		menus.POST("/extract", menuHandler.Extract)
		menus.POST("/analyze", menuHandler.Analyze)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
