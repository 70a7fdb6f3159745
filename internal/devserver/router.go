// Package devserver exposes the fixture backend over HTTP so the HTTP
// invoker has a local endpoint to talk to during development. Every
// operation is a JSON POST to /rpc/{method}; failures are written as
// RFC 9457 problem+json documents.
package devserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blaisecz/wellness-tracker/internal/backend"
	"github.com/blaisecz/wellness-tracker/internal/devserver/middleware"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/pkg/problem"
)

type Router struct {
	inv *backend.FixtureInvoker
}

func NewRouter(inv *backend.FixtureInvoker) *Router {
	return &Router{inv: inv}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Post("/rpc/{method}", rt.handleRPC)

	return r
}

func (rt *Router) handleRPC(w http.ResponseWriter, r *http.Request) {
	method := chi.URLParam(r, "method")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		problem.BadRequest("Failed to read request body").Write(w)
		return
	}

	var params json.RawMessage
	if len(body) > 0 {
		params = body
	}

	var result json.RawMessage
	if err := rt.inv.Invoke(r.Context(), method, params, &result); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if len(result) == 0 {
		result = json.RawMessage("null")
	}
	w.Write(result)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(err.Error()).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	default:
		problem.InternalError(err.Error()).Write(w)
	}
}
