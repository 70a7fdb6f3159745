// Package service holds the per-domain façades over the backend
// boundary. Each façade validates outgoing payloads, serializes dates
// as RFC3339 instants and applies the read-tolerant/write-strict
// policy: read failures are logged and surfaced alongside a safe
// zero-valued result so callers can degrade gracefully, write failures
// are wrapped and propagated.
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/blaisecz/wellness-tracker/internal/backend"
)

const tracerName = "wellness-tracker/service"

// read performs a read operation. On failure the result keeps its zero
// value and the error is logged before being returned, so the caller
// can record it without losing the safe default.
func read(ctx context.Context, inv backend.Invoker, method string, params, result any) error {
	if err := call(ctx, inv, method, params, result); err != nil {
		log.Printf("[service] %s: %v", method, err)
		return err
	}
	return nil
}

// write performs a mutation. Failures propagate to the caller; a write
// must never silently appear to succeed.
func write(ctx context.Context, inv backend.Invoker, method string, params, result any) error {
	return call(ctx, inv, method, params, result)
}

func call(ctx context.Context, inv backend.Invoker, method string, params, result any) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, method,
		trace.WithAttributes(attribute.String("backend.method", method)),
	)
	defer span.End()

	if err := inv.Invoke(ctx, method, params, result); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// fmtDate serializes an instant for the backend boundary. The zero
// time serializes to the empty string, meaning "unbounded".
func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
