// Package server provides the HTTP REST API for the staffing agency.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/staffsync/internal/session"
	"github.com/jonathan/staffsync/internal/store"
	"github.com/jonathan/staffsync/internal/types"
	"github.com/jonathan/staffsync/internal/wizard"
)

// Extractor turns uploaded resume text into a candidate profile.
type Extractor interface {
	Extract(ctx context.Context, text, filename string) (*types.CandidateProfile, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	profiles   *store.ProfileStore
	leads      *store.LeadStore
	sessions   *session.Manager
	wizards    *wizard.Manager
	extractor  Extractor
}

// Config holds server configuration
type Config struct {
	Port int
}

// Deps holds the stores and collaborators the handlers operate on.
type Deps struct {
	Profiles  *store.ProfileStore
	Leads     *store.LeadStore
	Sessions  *session.Manager
	Wizards   *wizard.Manager
	Extractor Extractor
}

// New creates a new server instance
func New(cfg Config, deps Deps) *Server {
	s := &Server{
		profiles:  deps.Profiles,
		leads:     deps.Leads,
		sessions:  deps.Sessions,
		wizards:   deps.Wizards,
		extractor: deps.Extractor,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for streamed collaborator turns
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Session endpoints
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("POST /sessions/{id}/messages", s.handleSendMessage)
	mux.HandleFunc("POST /sessions/{id}/messages/stream", s.handleSendMessageStream)
	mux.HandleFunc("POST /sessions/{id}/reset", s.handleResetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)

	// Candidate endpoints
	mux.HandleFunc("GET /profiles", s.handleListProfiles)
	mux.HandleFunc("POST /profiles/extract", s.handleExtractProfile)
	mux.HandleFunc("DELETE /profiles/{id}", s.handleDeleteProfile)
	mux.HandleFunc("POST /profiles/{id}/verification", s.handleToggleVerification)

	// Lead endpoints (read-only)
	mux.HandleFunc("GET /leads", s.handleListLeads)
	mux.HandleFunc("GET /leads/{id}", s.handleGetLead)

	// Documentation wizard endpoints
	mux.HandleFunc("POST /wizards", s.handleStartWizard)
	mux.HandleFunc("GET /wizards/{id}", s.handleGetWizard)
	mux.HandleFunc("POST /wizards/{id}/advance", s.handleAdvanceWizard)
	mux.HandleFunc("DELETE /wizards/{id}", s.handleCancelWizard)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until shutdown completes.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
