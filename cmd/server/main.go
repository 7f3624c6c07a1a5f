package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/adapter/ai"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/adapter/cache"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/adapter/store"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/handler"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/service"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/session"
	"github.com/arturoeanton/go-batch-assistant-ollama/internal/ws"
	"github.com/arturoeanton/go-batch-assistant-ollama/pkg/config"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting Batch Control Assistant",
		"port", cfg.Port,
		"ollama_embed", cfg.OllamaEmbedURL,
		"ollama_chat", cfg.OllamaChatURL,
		"ws_enabled", cfg.WSEnabled,
	)

	ctx := context.Background()

	// ── Database ─────────────────────────────────────────────────────────
	pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	if err := pgStore.EnsureSchema(ctx); err != nil {
		slog.Error("failed to create schema", "error", err)
		os.Exit(1)
	}
	if cfg.SeedOnStart {
		if err := pgStore.Seed(ctx); err != nil {
			slog.Error("failed to seed sample data", "error", err)
			os.Exit(1)
		}
	}

	// ── Adapters ─────────────────────────────────────────────────────────
	ollamaAI := ai.NewOllamaProvider(
		ai.OllamaEndpointConfig{
			BaseURL: cfg.OllamaEmbedURL,
			Model:   cfg.OllamaEmbedModel,
			Token:   cfg.OllamaEmbedToken,
		},
		ai.OllamaEndpointConfig{
			BaseURL: cfg.OllamaChatURL,
			Model:   cfg.OllamaChatModel,
			Token:   cfg.OllamaChatToken,
		},
	)

	respCache, err := cache.NewRedisCache(cache.Config{
		Address:  cfg.RedisAddr,
		Password: cfg.RedisPassword,
		Database: cfg.RedisDB,
		TTL:      cfg.CacheTTL,
	})
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer respCache.Close()

	// ── Corpus index (load blob or embed + build + persist) ─────────────
	indexer := service.NewIndexer(ollamaAI, cfg.IndexPath)
	corpusIndex, err := indexer.BuildOrLoad(ctx)
	if err != nil {
		slog.Error("failed to build corpus index", "error", err)
		os.Exit(1)
	}

	// ── Pipeline ─────────────────────────────────────────────────────────
	assistant := service.NewAssistant(
		ollamaAI,
		corpusIndex,
		respCache,
		pgStore,
		service.NewHeuristicExtractor(),
		service.Options{
			TopK:         cfg.TopK,
			LLMTimeout:   cfg.LLMTimeout,
			QueryTimeout: cfg.QueryTimeout,
		},
	)

	sessions := session.NewManager()

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 3 * time.Minute, // pipeline calls an LLM inline
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Session-ID"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		ExposeHeaders: []string{"X-Session-ID"},
	}))

	// Health check
	app.Get("/api/v1/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"app":     cfg.AppName,
			"model":   ollamaAI.ModelName(),
			"corpus":  corpusIndex.Size(),
			"version": "1.0.0",
		})
	})

	api := app.Group("/api/v1")

	chatHandler := handler.NewChatHandler(assistant, sessions)
	chatHandler.Register(api)

	// ── Websocket chat (separate port) ───────────────────────────────────
	if cfg.WSEnabled {
		wsServer := ws.NewServer(assistant, sessions, cfg.WSPort)
		go func() {
			if err := wsServer.Start(); err != nil {
				slog.Error("websocket server failed", "error", err)
			}
		}()
	}

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
