package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/studi-app/studi-api/internal/agent"
	"github.com/studi-app/studi-api/internal/auth"
	"github.com/studi-app/studi-api/internal/config"
	"github.com/studi-app/studi-api/internal/docs"
	"github.com/studi-app/studi-api/internal/server"
	"github.com/studi-app/studi-api/internal/users"
)

func main() {
	catalogPath := flag.String("catalog", "", "Path to a YAML docs catalog file (default: built-in catalog)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flag overrides the environment for the docs catalog path
	if *catalogPath != "" {
		cfg.Docs.CatalogPath = *catalogPath
	}

	// Build the document catalog
	catalog := docs.NewCatalog()
	if cfg.Docs.CatalogPath != "" {
		catalog, err = docs.LoadCatalogFile(cfg.Docs.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load docs catalog: %v", err)
		}
		log.Printf("Using docs catalog: %s", cfg.Docs.CatalogPath)
	}

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	responder := agent.NewResponder(agent.Config{
		QueryDelay: cfg.Agent.QueryDelay,
		PlanDelay:  cfg.Agent.PlanDelay,
	})

	addr := server.Start(ctx, cfg, server.Deps{
		Gate:     auth.NewGate(),
		Profiles: users.NewStore(),
		Docs:     catalog,
		Agent:    responder,
	})
	log.Printf("Studi API running at http://%s", addr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	cancel()
	time.Sleep(1 * time.Second) // Give time for connections to close
}
