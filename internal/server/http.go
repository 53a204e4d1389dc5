package server

import (
	"context"
	"encoding/json"
	"errors"
	"ethereplodor-server/internal/engine"
	"ethereplodor-server/internal/version"
	"ethereplodor-server/pkg/logger"
	"net/http"
	_ "net/http/pprof" // Profiling
	"time"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Sim  *engine.Simulation
	Port string
}

func New(sim *engine.Simulation, port string) *Server {
	return &Server{
		Sim:  sim,
		Port: port,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/state", enableCORS(s.handleState))

	NewDebugHandler(s.Sim).RegisterRoutes(mux)

	// pprof lives on the default mux
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	return mux
}

// Run serves until ctx ends, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("🌿 Ethereplodor simulation running on :%s", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Log.Info("🛑 HTTP server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS upgrades and starts both pumps.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Sim, conn)

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(version.Info())
}

// handleState serves the latest snapshot for clients that poll.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Snapshot())
}
