package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/geoseis/surveymap/internal/api"
	"github.com/geoseis/surveymap/internal/config"
	"github.com/geoseis/surveymap/internal/headerdb"
	"github.com/geoseis/surveymap/internal/survey"
	"github.com/geoseis/surveymap/internal/version"
)

var (
	//go:embed static/*
	staticFiles embed.FS

	devMode    = flag.Bool("dev", false, "Run in dev mode (serve ./static, enable admin routes)")
	configPath = flag.String("config", config.DefaultConfigPath, "Path to config file")
	storePath  = flag.String("db", "", "Path to the trace-header store (overrides config)")
	listen     = flag.String("listen", "", "Listen address (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	store, err := headerdb.NewDB(cfg.StorePath)
	if err != nil {
		log.Fatalf("failed to open header store %s: %v", cfg.StorePath, err)
	}
	defer store.Close()

	resolver := survey.NewResolver(store, cfg.Tolerance())

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg.Add(1)
	go func() {
		defer wg.Done()

		mux := http.NewServeMux()

		// admin debugging routes (accessible only in dev mode or over Tailscale)
		store.AttachAdminRoutes(mux)

		apiMux := api.NewServer(resolver, cfg.StorePath, cfg.Units).ServeMux()
		mux.Handle("/api/", http.StripPrefix("/api", api.CORSMiddleware(apiMux)))

		// static frontend from the embedded filesystem in production, or from
		// ./static in dev for iteration without restarting the server
		var staticHandler http.Handler
		if *devMode {
			staticHandler = http.FileServer(http.Dir("./static"))
		} else {
			sub, err := fs.Sub(staticFiles, "static")
			if err != nil {
				log.Fatalf("failed to mount embedded static files: %v", err)
			}
			staticHandler = http.FileServer(http.FS(sub))
		}
		mux.Handle("/", staticHandler)

		server := &http.Server{
			Addr:    cfg.Listen,
			Handler: api.RequestIDMiddleware(api.LoggingMiddleware(mux)),
		}

		go func() {
			log.Printf("surveymap %s serving %s on %s", version.String(), cfg.StorePath, cfg.Listen)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("failed to start server: %v", err)
			}
		}()

		<-ctx.Done()
		log.Println("shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}()

	wg.Wait()
	log.Printf("graceful shutdown complete")
}
