// Wellness Tracker development backend.
//
// Serves the backend operation catalog over HTTP from in-memory
// fixture data, so the client data layer can run against a local
// endpoint in http mode.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/blaisecz/wellness-tracker/internal/backend"
	"github.com/blaisecz/wellness-tracker/internal/config"
	"github.com/blaisecz/wellness-tracker/internal/devserver"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when OTLP is not configured)
	ctx := context.Background()
	shutdown, err := telemetry.InitTracer(ctx, cfg, "wellness-tracker-devserver")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	goal := domain.NutritionGoal{
		DailyCalories: cfg.DailyCalories,
		DailyProtein:  cfg.DailyProtein,
		DailyCarbs:    cfg.DailyCarbs,
		DailyFat:      cfg.DailyFat,
	}

	// Seeded fixture backend
	inv := backend.NewFixtureInvoker(goal)

	// Setup router
	router := devserver.NewRouter(inv)
	handler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting devserver on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
