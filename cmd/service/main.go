package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/bulatminnakhmetov/tsunagu-backend/docs"
	"github.com/bulatminnakhmetov/tsunagu-backend/internal/config"
	"github.com/bulatminnakhmetov/tsunagu-backend/internal/database"
	"github.com/bulatminnakhmetov/tsunagu-backend/internal/handler/auth"
	completionhandler "github.com/bulatminnakhmetov/tsunagu-backend/internal/handler/completion"
	"github.com/bulatminnakhmetov/tsunagu-backend/internal/handler/health"
	mediarepo "github.com/bulatminnakhmetov/tsunagu-backend/internal/repository/media"
	profilerepo "github.com/bulatminnakhmetov/tsunagu-backend/internal/repository/profile"
	completionservice "github.com/bulatminnakhmetov/tsunagu-backend/internal/service/completion"
	"github.com/bulatminnakhmetov/tsunagu-backend/internal/storage/media"
)

// @title           Tsunagu profile completion API
// @version         1.0
// @description     Scores how complete a member profile is
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	setupLogger(cfg.Logging)

	// Подключение к базе данных
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if cfg.Migrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	// Хранилище изображений
	minioClient, err := media.NewMinioClient(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}
	storage := media.NewMinioStorage(minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := storage.CheckBucket(ctx); err != nil {
		// URLs of uploaded images can still be built without the bucket
		log.WithError(err).WithField("bucket", cfg.Storage.Bucket).Warn("storage is unavailable")
	}
	cancel()

	// Репозитории и сервисы
	profileRepo := profilerepo.NewPostgresRepository(db)
	mediaRepo := mediarepo.NewRepository(db)

	completionService := completionservice.NewCompletionService(
		profileRepo,
		mediaRepo,
		storage,
		completionservice.NewClassifier(cfg.HomeNationality),
		completionservice.NewLogObserver(log.StandardLogger()),
	)

	verifier := auth.NewTokenVerifier(cfg.JWTSecret)
	completionHandler := completionhandler.NewCompletionHandler(completionService)
	healthHandler := health.NewHealthHandler(profileRepo)

	// Создание роутера
	r := chi.NewRouter()

	// Базовые middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", healthHandler.Health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	completionHandler.PublicRoutes(r)

	// Защищенные маршруты (требуют аутентификации)
	r.Group(func(r chi.Router) {
		r.Use(verifier.AuthMiddleware)
		completionHandler.Routes(r)
	})

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Запуск сервера в горутине
	go func() {
		log.Infof("Server is starting on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on port %s: %v", cfg.ServerPort, err)
		}
	}()

	// Канал для обработки сигналов завершения
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop

	log.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

func setupLogger(cfg config.LoggingConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.WithError(err).Warnf("unknown log level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
