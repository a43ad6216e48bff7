// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_lesson_progress/internal/config"
	"go_5_lesson_progress/internal/handlers"
	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/repository"
	"go_5_lesson_progress/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"gorm.io/gorm"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.Bool("backend_enabled", config.Cfg.Backend.Enabled),
		slog.String("timezone", config.Cfg.App.Timezone),
	)

	// 2. バックエンドストア (PostgreSQL) への接続。
	// バックエンド無効時は接続せず、習得状態と連続学習記録は縮退動作になる。
	var db *gorm.DB
	if config.Cfg.Backend.Enabled {
		var err error
		db, err = repository.NewDB(config.Cfg.Database.URL, logger)
		if err != nil {
			slog.Error("Error initializing database", slog.Any("error", err))
			os.Exit(1)
		}
		sqlDB, err := db.DB()
		if err != nil {
			slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				slog.Error("Error closing database connection", slog.Any("error", err))
			} else {
				slog.Info("Database connection closed.")
			}
		}()
	} else {
		slog.Warn("Backend store disabled: mastery and streaks will degrade gracefully")
	}

	// ゲスト用の端末ローカルストア (SQLite) はバックエンドと独立して常に開く
	guestDB, err := repository.NewGuestDB(config.Cfg.GuestStore.Path, logger)
	if err != nil {
		slog.Error("Error opening guest store", slog.Any("error", err))
		os.Exit(1)
	}
	if err := guestDB.AutoMigrate(&model.GuestMastery{}); err != nil {
		slog.Error("Error migrating guest store", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	contentRepo := repository.NewGormContentRepository()
	masteryRepo := repository.NewGormMasteryRepository()
	streakRepo := repository.NewGormStreakRepository()
	guestStore := repository.NewGormGuestStore(guestDB)

	contentService := service.NewContentService(db, contentRepo, &config.Cfg)
	masteryResolver := service.NewMasteryResolver(db, masteryRepo, guestStore, &config.Cfg)
	progressService := service.NewProgressService(contentService, masteryResolver)
	masteryService := service.NewMasteryService(db, masteryRepo, guestStore, &config.Cfg)
	streakService := service.NewStreakService(db, streakRepo, &config.Cfg)

	contentHandler := handlers.NewContentHandler(contentService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	masteryHandler := handlers.NewMasteryHandler(masteryService, logger)
	streakHandler := handlers.NewStreakHandler(streakService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// JWT があればサインイン済み、なければゲスト (X-Device-ID)
		r.Use(middleware.IdentityMiddleware(&config.Cfg))

		r.Route("/content", func(r chi.Router) {
			r.Get("/lessons", contentHandler.GetLessons)
		})

		r.Route("/progress", func(r chi.Router) {
			r.Get("/lessons", progressHandler.GetLessonStats)
			r.Get("/courses", progressHandler.GetCourseStats)
			r.Get("/default-lesson", progressHandler.GetDefaultLesson)
			r.Get("/courses/{course}/highest-unit", progressHandler.GetHighestMasteredUnit)
		})

		r.Put("/mastery/{vocab_id}", masteryHandler.PutMastery)

		r.Route("/streaks", func(r chi.Router) {
			r.Post("/login", streakHandler.PostLogin)
			r.Post("/activity", streakHandler.PostActivity)
			r.Get("/current", streakHandler.GetCurrent)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		// バックエンド無効時はDBチェックなしで稼働中とみなす
		if db != nil {
			ctx := r.Context()
			sqlDB, err := db.DB()
			if err != nil {
				slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
			if err := sqlDB.PingContext(ctx); err != nil {
				slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
