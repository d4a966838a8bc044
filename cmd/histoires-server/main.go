// Package main is the book-authoring API server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/application/library"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/application/navigation"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/application/story"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/config"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/infrastructure/llm"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/infrastructure/persistence/memory"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/infrastructure/persistence/postgres"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/infrastructure/persistence/redis"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/handler"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/router"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/tracer"

	"github.com/joho/godotenv"
)

// Version info, injected at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting histoires-server",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	shutdownTracer, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		log.Error("failed to init tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// Postgres
	pg, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to postgres", err)
	}
	defer pg.Close()

	if err := pg.Migrate(); err != nil {
		logger.Fatal(ctx, "failed to run migrations", err)
	}

	// Redis backs the per-chapter generation lock. Without it a process-local
	// lock is used, which is correct as long as one instance runs.
	var (
		redisClient *redis.Client
		locker      story.Locker
	)
	if cfg.Cache.Redis.Enabled {
		redisClient, err = redis.NewClient(&cfg.Cache.Redis)
		if err != nil {
			logger.Fatal(ctx, "failed to connect to redis", err)
		}
		defer redisClient.Close()
		locker = redis.NewGenerationLock(redisClient, redis.LeaseTTL(cfg.LLM.Timeout))
	} else {
		log.Warn("redis disabled, using in-process generation lock")
		locker = memory.NewGenerationLock()
	}

	// Repositories
	bookRepo := postgres.NewBookRepository(pg)
	chapterRepo := postgres.NewChapterRepository(pg)
	contentRepo := postgres.NewContentRepository(pg)
	styleRepo := postgres.NewStyleRepository(pg)
	txManager := postgres.NewTxManager(pg)

	// Services
	bookService := library.NewBookService(bookRepo, chapterRepo, contentRepo, styleRepo, txManager)
	chapterService := library.NewChapterService(bookRepo, chapterRepo, contentRepo, txManager)
	contentService := library.NewContentService(chapterRepo, contentRepo)
	styleService := library.NewStyleService(styleRepo, bookRepo, txManager)
	generator := story.NewGenerator(bookRepo, chapterRepo, contentRepo, styleRepo,
		llm.NewClient(&cfg.LLM), locker)
	session := navigation.NewSession(bookRepo, chapterRepo)

	if err := styleService.Seed(ctx); err != nil {
		logger.Fatal(ctx, "failed to seed predefined styles", err)
	}

	// HTTP
	r := router.New(cfg, router.Handlers{
		Health:     handler.NewHealthHandler(pg, redisClient),
		Books:      handler.NewBookHandler(bookService),
		Chapters:   handler.NewChapterHandler(chapterService),
		Contents:   handler.NewContentHandler(contentService),
		Styles:     handler.NewStyleHandler(styleService),
		Generation: handler.NewGenerationHandler(generator),
		Session:    handler.NewSessionHandler(session),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
