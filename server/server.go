package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lankatransit/trip-planner/catalog"
	"github.com/lankatransit/trip-planner/metrics"
	"github.com/lankatransit/trip-planner/planner"
)

// Server exposes the planner over HTTP. Every dependency is injected so
// tests can drive the handlers through httptest without a listener.
type Server struct {
	planner *planner.Planner
	snap    *catalog.Snapshot
	metrics *metrics.Collector
	port    int

	httpServer *http.Server
}

func New(p *planner.Planner, snap *catalog.Snapshot, m *metrics.Collector, port int) *Server {
	return &Server{planner: p, snap: snap, metrics: m, port: port}
}

// Handler builds the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/stops", s.handleStops)
	mux.HandleFunc("/api/routes", s.handleRoutes)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	return mux
}

// Start begins serving in the background.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// WaitForShutdown blocks until SIGINT or SIGTERM, then drains in-flight
// requests.
func (s *Server) WaitForShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
