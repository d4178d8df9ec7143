// Package server provides HTTP server initialization and lifecycle
// management for the Studi API.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/studi-app/studi-api/internal/agent"
	"github.com/studi-app/studi-api/internal/auth"
	"github.com/studi-app/studi-api/internal/config"
	"github.com/studi-app/studi-api/internal/docs"
	"github.com/studi-app/studi-api/internal/users"
	"github.com/studi-app/studi-api/web/handlers"
)

// Deps bundles the collaborators the route groups depend on. No route
// group depends on another at runtime; they only share the identity gate.
type Deps struct {
	Gate     *auth.Gate
	Profiles *users.Store
	Docs     *docs.Catalog
	Agent    *agent.Responder
}

// securityHeadersMiddleware adds security headers to all HTTP responses.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// Start initializes and starts the HTTP server. It returns the actual
// address being listened on (useful for testing with port 0). The server
// shuts down gracefully when the context is cancelled.
func Start(ctx context.Context, cfg *config.Config, deps Deps) string {
	mux := http.NewServeMux()

	authHandlers := handlers.NewAuthHandlers(deps.Gate)
	userHandlers := handlers.NewUserHandlers(deps.Profiles)
	docHandlers := handlers.NewDocHandlers(deps.Docs)
	agentHandlers := handlers.NewAgentHandlers(deps.Agent)
	agentSocket := handlers.NewAgentSocket(deps.Agent, originPatterns(cfg.CORS.AllowedOrigins))

	// Create rate limiter (10 req/sec, burst of 20)
	rateLimiter := handlers.NewRateLimiter(10.0, 20)

	// Root endpoint
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Welcome to Studi API","docs":"/docs","redoc":"/redoc"}`))
	})

	// Health endpoint — no auth required, used by monitoring
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Authentication routes
	mux.HandleFunc("/api/auth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		authHandlers.Login(w, r)
	})
	mux.Handle("/api/auth/me", handlers.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		authHandlers.Me(w, r)
	}), deps.Gate))

	// User routes (require a resolved identity)
	mux.Handle("/api/users/profile", handlers.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			userHandlers.GetProfile(w, r)
		case http.MethodPut:
			userHandlers.UpdateProfile(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}), deps.Gate))
	mux.Handle("/api/users/preferences", handlers.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			userHandlers.GetPreferences(w, r)
		case http.MethodPut:
			userHandlers.UpdatePreferences(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}), deps.Gate))

	// Documentation routes (public)
	mux.HandleFunc("/api/docs/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		docHandlers.ListCategories(w, r)
	})
	mux.HandleFunc("/api/docs/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		docHandlers.ListItems(w, r)
	})
	mux.HandleFunc("/api/docs/content/{doc_id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		docHandlers.GetContent(w, r)
	})
	mux.HandleFunc("/api/docs/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		docHandlers.Search(w, r)
	})

	// Agent routes (require a resolved identity)
	mux.Handle("/api/agents/query", handlers.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		agentHandlers.Query(w, r)
	}), deps.Gate))
	mux.Handle("/api/agents/plan", handlers.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		agentHandlers.CreatePlan(w, r)
	}), deps.Gate))
	mux.Handle("/api/agents/tasks/{task_id}", handlers.RequireIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		agentHandlers.GetTaskStatus(w, r)
	}), deps.Gate))

	// WebSocket endpoint (no auth required - origin validation handles security)
	mux.Handle("/api/agents/ws", agentSocket)

	// Middleware stack: recovery innermost, then CORS and rate limiting,
	// security headers outermost.
	handler := handlers.RecoveryMiddleware(mux)
	handler = handlers.CORSMiddleware(handler, cfg.CORS.AllowedOrigins)
	handler = handlers.RateLimitMiddleware(handler, rateLimiter)
	handler = securityHeadersMiddleware(handler)

	// Create server with security timeouts. The write timeout leaves room
	// for the agent facade's simulated latency.
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", addr, err)
	}

	actualAddr := listener.Addr().String()

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	return actualAddr
}

// originPatterns converts configured CORS origins into the host patterns
// the WebSocket accept options expect (no scheme).
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, origin := range origins {
		if parsed, err := url.Parse(origin); err == nil && parsed.Host != "" {
			patterns = append(patterns, parsed.Host)
			continue
		}
		patterns = append(patterns, origin)
	}
	return patterns
}
