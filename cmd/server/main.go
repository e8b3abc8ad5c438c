package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"perfume-logistics/internal/agent"
	"perfume-logistics/internal/config"
	"perfume-logistics/internal/middleware"
	"perfume-logistics/internal/routes"
	"perfume-logistics/internal/session"
	"perfume-logistics/internal/store"
	"perfume-logistics/internal/telemetry"

	"github.com/go-chi/chi/v5"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Telemetry
	tp, err := telemetry.Init(ctx, cfg.OTelServiceName, cfg.OTelEndpoint, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to init telemetry: %v", err)
	}

	metrics, err := telemetry.NewMetrics(tp.Meter)
	if err != nil {
		log.Fatalf("Failed to init metrics: %v", err)
	}

	// Persistence: settings/history/products survive restarts only with a
	// database attached; otherwise state is held in memory for the session.
	var kv store.KV
	pool, err := store.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("WARNING: Database not available: %v", err)
		log.Printf("Running with in-memory state — history will not survive restarts")
		pool = nil
		kv = store.NewMemoryKV()
	} else {
		pgkv, err := store.NewPostgresKV(ctx, pool)
		if err != nil {
			log.Printf("WARNING: State table unavailable: %v", err)
			kv = store.NewMemoryKV()
		} else {
			kv = pgkv
		}
	}

	// Agent client
	var primary agent.Provider
	switch cfg.AgentProvider {
	case "ollama":
		primary = agent.NewOllamaProvider(cfg.OllamaBaseURL)
	case "google":
		primary = agent.NewGoogleProvider(cfg.GoogleAPIKey)
	case "anthropic":
		primary = agent.NewAnthropicProvider(cfg.AnthropicAPIKey)
	default:
		primary = agent.NewOpenAIProvider(cfg.OpenAIAPIKey)
	}

	var fallback agent.Provider
	if cfg.FallbackProvider == "anthropic" && cfg.AnthropicAPIKey != "" {
		fallback = agent.NewAnthropicProvider(cfg.AnthropicAPIKey)
	}

	agents := &agent.Client{
		Primary:              primary,
		Fallback:             fallback,
		Tracer:               tp.Tracer,
		Metrics:              metrics,
		PrimaryProvider:      cfg.AgentProvider,
		FallbackProviderName: cfg.FallbackProvider,
		FallbackModel:        cfg.FallbackModel,
		ManagerModel:         cfg.ManagerModel,
		DispatcherModel:      cfg.DispatcherModel,
		Temperature:          cfg.DefaultTemperature,
		MaxTokens:            cfg.DefaultMaxTokens,
	}

	// Session state
	s := session.New(ctx, kv, agents, tp.Tracer, metrics)

	// Router
	r := chi.NewRouter()
	r.Use(middleware.OTelHTTP(cfg.OTelServiceName))

	r.Get("/api/health", routes.HealthHandler(cfg.OTelServiceName))
	r.Post("/api/run", routes.RunHandler(s))
	r.Post("/api/dispatch", routes.DispatchHandler(s))
	r.Post("/api/sample", routes.SampleModeHandler(s))
	r.Get("/api/state", routes.StateHandler(s))
	r.Get("/api/history", routes.HistoryHandler(s))
	r.Get("/api/settings", routes.GetSettingsHandler(s))
	r.Put("/api/settings", routes.SaveSettingsHandler(s))
	r.Get("/api/products", routes.ListProductsHandler(s))
	r.Post("/api/products", routes.AddProductHandler(s))
	r.Put("/api/products/{id}", routes.UpdateProductHandler(s))
	r.Delete("/api/products/{id}", routes.DeleteProductHandler(s))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting %s on :%s", cfg.OTelServiceName, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if pool != nil {
		pool.Close()
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Printf("Telemetry shutdown error: %v", err)
	}
}
