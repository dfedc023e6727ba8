package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gin-catalog/controllers"
	"gin-catalog/infra"
	"gin-catalog/middlewares"
	"gin-catalog/models"
	"gin-catalog/ratelimit"
	"gin-catalog/repositories"
	"gin-catalog/services"
	"gin-catalog/storage"
	"gin-catalog/verifier"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, sessionDB *gorm.DB, counters ratelimit.CounterStore, blobs storage.BlobStore, idVerifier verifier.Verifier) *gin.Engine {
	ownerRepository := repositories.NewOwnerRepository(db)
	sessionRepository := repositories.NewSessionRepository(sessionDB)
	authService := services.NewAuthService(idVerifier, ownerRepository, sessionRepository)
	authController := controllers.NewAuthController(authService)

	categoryRepository := repositories.NewCategoryRepository(db)
	categoryService := services.NewCategoryService(categoryRepository)
	categoryController := controllers.NewCategoryController(categoryService)

	itemRepository := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepository)
	itemController := controllers.NewItemController(itemService)

	imageRepository := repositories.NewImageRepository(db)
	imageService := services.NewImageService(imageRepository, blobs)
	imageController := controllers.NewImageController(imageService)

	limit, per := rateLimitConfig()
	// Reads stay available when the counter store is down; mutations are
	// fail-closed so a dead counter can never let writes through unmetered.
	readLimiter := ratelimit.NewLimiter(counters, 30, per, ratelimit.WithFailOpen())
	writeLimiter := ratelimit.NewLimiter(counters, limit, per)

	r := gin.Default()
	r.Use(cors.Default())

	authRouter := r.Group("/auth", middlewares.RateLimitMiddleware(writeLimiter))
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", middlewares.AuthMiddleware(authService), authController.Logout)

	// Mutating routes run the full pipeline in order:
	// rate limit → auth → state token → (service) ownership + validation.
	categoryRouter := r.Group("/categories", middlewares.RateLimitMiddleware(readLimiter))
	categoryRouterWithAuth := r.Group("/categories", middlewares.RateLimitMiddleware(writeLimiter), middlewares.AuthMiddleware(authService), middlewares.StateTokenMiddleware())
	categoryRouter.GET("", categoryController.FindAll)
	categoryRouter.GET("/:id", categoryController.FindById)
	categoryRouterWithAuth.POST("", categoryController.Create)
	categoryRouterWithAuth.DELETE("/:id", categoryController.Delete)

	itemRouter := r.Group("/items", middlewares.RateLimitMiddleware(readLimiter))
	itemRouterWithAuth := r.Group("/items", middlewares.RateLimitMiddleware(writeLimiter), middlewares.AuthMiddleware(authService), middlewares.StateTokenMiddleware())
	itemRouter.GET("", itemController.FindAll)
	itemRouter.GET("/:id", itemController.FindById)
	itemRouterWithAuth.POST("", itemController.Create)
	itemRouterWithAuth.PUT("/:id", itemController.Update)
	itemRouterWithAuth.DELETE("/:id/image", itemController.DetachImage)
	itemRouterWithAuth.DELETE("/:id", itemController.Delete)

	imageRouter := r.Group("/images", middlewares.RateLimitMiddleware(readLimiter))
	imageRouterWithAuth := r.Group("/images", middlewares.RateLimitMiddleware(writeLimiter), middlewares.AuthMiddleware(authService), middlewares.StateTokenMiddleware())
	imageRouter.GET("", imageController.FindAll)
	imageRouter.GET("/:id", imageController.FindById)
	imageRouterWithAuth.POST("", imageController.Create)
	imageRouterWithAuth.DELETE("/:id", imageController.Delete)

	return r
}

func rateLimitConfig() (int64, time.Duration) {
	limit := int64(10)
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("Invalid RATE_LIMIT %q, using %d", v, limit)
		} else {
			limit = parsed
		}
	}

	per := 60 * time.Second
	if v := os.Getenv("RATE_PER"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Invalid RATE_PER %q, using %s", v, per)
		} else {
			per = time.Duration(parsed) * time.Second
		}
	}
	return limit, per
}

func main() {
	infra.Initialize()

	db := infra.SetupDB()
	sessionDB := infra.SetupSessionDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.Owner{}, &models.Category{}, &models.Image{}, &models.Item{}); err != nil {
			panic("Failed to migrate database")
		}
		if err := sessionDB.AutoMigrate(&models.RevokedSession{}); err != nil {
			log.Printf("Failed to migrate revoked session database: %v", err)
		}
	}

	rdb := infra.SetupRedis()
	defer rdb.Close()
	counters := ratelimit.NewRedisCounterStore(rdb)

	imageDir := os.Getenv("IMAGE_DIR")
	if imageDir == "" {
		imageDir = "images"
	}
	blobs, err := storage.NewFileBlobStore(imageDir)
	if err != nil {
		log.Fatalf("Failed to set up blob storage: %v", err)
	}

	idVerifier := verifier.NewJWTVerifier(os.Getenv("VERIFIER_SECRET"), os.Getenv("VERIFIER_ISSUER"))

	r := setupRouter(db, sessionDB, counters, blobs, idVerifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
