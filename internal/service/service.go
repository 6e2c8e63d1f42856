// Package service implements the flavor catalog and cart operations on top
// of a storage backend. It validates input, translates storage failures
// into apperrors kinds, and publishes mutation events.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vamsi7889/Ice-cream/internal/events"
)

var tracer = otel.Tracer("github.com/Vamsi7889/Ice-cream/internal/service")

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// publish sends event and only logs failures.
func publish(ctx context.Context, publisher events.Publisher, event events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("Event publish failed", "type", event.Type, "event_id", event.ID, "error", err)
		return
	}
	slog.Debug("Event published", "type", event.Type, "event_id", event.ID)
}

func orNop(publisher events.Publisher) events.Publisher {
	if publisher == nil {
		return events.Nop{}
	}
	return publisher
}
