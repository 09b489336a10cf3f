// Package server wires the run-history API into a chi router and exposes it
// over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dekarrin/mimic/internal/runstore"
	"github.com/dekarrin/mimic/server/api"
	"github.com/dekarrin/mimic/server/middle"
)

// Server serves the read-only run-history API.
type Server struct {
	router *chi.Mux
	store  *runstore.Store
}

// New builds a Server backed by store.
func New(store *runstore.Store) *Server {
	s := &Server{store: store}

	r := chi.NewRouter()
	r.Use(middle.Logged())
	r.Use(middle.DontPanic())

	a := &api.API{Store: store}
	r.Route(api.PathPrefix, func(r chi.Router) {
		r.Get("/runs", a.ListRuns)
		r.Get("/runs/{id}", a.GetRun)
		r.Get("/runs/{id}/tree", a.GetRunTree)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts serving on addr until the context is canceled or an
// unrecoverable error occurs.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
