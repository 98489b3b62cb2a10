package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"syllabushub/internal/config"
	"syllabushub/internal/database"
	"syllabushub/internal/domain/auth"
	"syllabushub/internal/domain/canvas"
	"syllabushub/internal/domain/course"
	"syllabushub/internal/domain/professor"
	"syllabushub/internal/domain/recommend"
	"syllabushub/internal/domain/tag"
	"syllabushub/internal/domain/upload"
	"syllabushub/internal/logger"
	"syllabushub/internal/middleware"
	"syllabushub/internal/pkg/jwt"
	"syllabushub/internal/storage"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatal("object store init failed", zap.Error(err))
	}

	authRepo := auth.NewRepository(db)
	profRepo := professor.NewRepository(db)
	courseRepo := course.NewRepository(db)
	tagRepo := tag.NewRepository(db)
	uploadRepo := upload.NewRepository(db)

	if err := tagRepo.EnsureSeed(context.Background()); err != nil {
		log.Fatal("tag seed failed", zap.Error(err))
	}

	jwtService := jwt.New(cfg.JWTSecret, cfg.TokenTTL)
	blacklist := auth.NewBlacklist()
	go func() {
		for range time.Tick(10 * time.Minute) {
			blacklist.Sweep()
		}
	}()

	authService := auth.NewService(authRepo, jwtService, blacklist, cfg.TokenTTL)
	courseService := course.NewService(courseRepo, profRepo)
	tagService := tag.NewService(tagRepo)
	uploadService := upload.NewService(uploadRepo, profRepo, authRepo, courseRepo, store, log)
	recService := recommend.NewService(courseRepo)
	canvasClient := canvas.NewClient(cfg.CanvasBaseURL, cfg.CanvasToken)
	canvasService := canvas.NewService(canvasClient, uploadService, profRepo, log)

	authHandler := auth.NewHandler(authService)
	courseHandler := course.NewHandler(courseService)
	tagHandler := tag.NewHandler(tagService)
	uploadHandler := upload.NewHandler(uploadService)
	recHandler := recommend.NewHandler(recService)
	canvasHandler := canvas.NewHandler(canvasService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	if cfg.StorageBackend == "filesystem" {
		router.Static(cfg.LocalBaseURL, cfg.LocalStoreDir)
	}

	api := router.Group("/api/v1")
	auth.RegisterRoutes(api, authHandler)
	course.RegisterRoutes(api, courseHandler)
	tag.RegisterRoutes(api, tagHandler)
	upload.RegisterRoutes(api, uploadHandler)
	recommend.RegisterRoutes(api, recHandler)
	canvas.RegisterRoutes(api, canvasHandler)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(jwtService, blacklist))
	auth.RegisterProtectedRoutes(protected, authHandler)
	upload.RegisterProtectedRoutes(protected, uploadHandler)

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func buildStore(cfg config.Config) (storage.ObjectStore, error) {
	if cfg.StorageBackend == "oss" {
		return storage.NewOSS(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey, cfg.OSSBucket, cfg.PublicBaseURL)
	}
	return storage.NewFilesystem(cfg.LocalStoreDir, cfg.LocalBaseURL), nil
}
