package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"planhebdo_backend/internals/configs"
	database "planhebdo_backend/internals/databases"
	aiService "planhebdo_backend/internals/features/ai/service"
	"planhebdo_backend/internals/features/plans/model"
	middlewares "planhebdo_backend/internals/middlewares"
	routes "planhebdo_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON rapide
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middlewares de base + performance
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                 // cache 304

	// 🔎 Request-ID + chrono (observabilité légère)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// garde-fou HTTP (aligné sur le statement_timeout de la DB)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB : connexion + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUp()
	if err := database.DB.AutoMigrate(&model.WeekPlanModel{}); err != nil {
		log.Fatalf("❌ Migration week_plans impossible: %v", err)
	}

	// 🤖 Gemini (facultatif : sans clé, la route IA répond 503)
	var gen *aiService.Generator
	if configs.GeminiAPIKey != "" {
		g, err := aiService.NewGenerator(context.Background(), configs.GeminiAPIKey)
		if err != nil {
			log.Printf("⚠️ Initialisation Gemini impossible: %v", err)
		} else {
			gen = g
			defer gen.Close()
			log.Println("✅ SDK Google Gemini initialisé avec le modèle gemini-1.5-flash-latest.")
		}
	}

	// ❤️ Health check (anti-cold start)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, gen)

	// 🔒 timeouts serveur
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Serveur démarré sur le port %s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("❌ Erreur serveur: %v", err)
		}
	}()

	// arrêt propre + fermeture du pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
