package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"marketplace_bot/catalog"
	"marketplace_bot/config"
	"marketplace_bot/dashboard"
	"marketplace_bot/dialog"
	"marketplace_bot/handlers"
	"marketplace_bot/jobs"
	"marketplace_bot/middleware"
	"marketplace_bot/nlp"
	"marketplace_bot/storage"
)

func loadCatalog(cfg *config.Config) (*catalog.Store, error) {
	if cfg.PostgresDSN != "" {
		db, err := storage.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return catalog.LoadPostgres(context.Background(), db)
	}
	return catalog.LoadFile(cfg.CatalogPath)
}

func setupRoutes(cfg *config.Config, manager dialog.DialogManager, sessions dialog.SessionStore) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)

	// Messaging channel webhook
	r.Post("/webhook", handlers.Webhook(manager))

	// Liveness check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("✅ Marketplace bot is running"))
	})

	// Operator status
	r.With(middleware.RequireAPIKey(cfg.APIKey)).Get("/status", dashboard.Handler(sessions))

	return r
}

func main() {
	fmt.Println("🚀 Starting marketplace bot...")

	cfg := config.LoadConfig()
	fmt.Printf("🔧 Configuration loaded: env=%s port=%s\n", cfg.Env, cfg.Port)

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("❌ Catalog load failed: %v", err)
	}
	fmt.Printf("📚 Catalog loaded: %d categories\n", len(cat.Categories()))

	keywords := dialog.DefaultKeywords()
	if cfg.KeywordsPath != "" {
		if keywords, err = dialog.LoadKeywords(cfg.KeywordsPath); err != nil {
			log.Fatalf("❌ Keywords load failed: %v", err)
		}
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	var sessions dialog.SessionStore = dialog.NewMemoryStore()
	var orders dialog.OrderSink
	if cfg.RedisAddr != "" {
		rdb, err := storage.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("❌ Redis connection failed: %v", err)
		}
		sessions = storage.NewRedisSessionStore(rdb, cfg.SessionTTL)
		orders = jobs.NewPublisher(rdb)
		jobs.StartWorker(workerCtx, rdb)
	}

	var intents dialog.IntentDetector
	if cfg.IntentURL != "" {
		intents = nlp.NewDetector(cfg.IntentURL)
	}

	manager := dialog.NewManager(cat, sessions, dialog.ManagerConfig{
		Keywords:    keywords,
		DeliveryFee: &cfg.DeliveryFee,
		Orders:      orders,
		Intents:     intents,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: setupRoutes(cfg, manager, sessions),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		fmt.Printf("🌐 Server listening: http://localhost:%s\n", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	<-stop
	fmt.Println("\n⏳ Shutting down...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Shutdown error: %v", err)
	}

	fmt.Println("✅ Shutdown complete.")
}
