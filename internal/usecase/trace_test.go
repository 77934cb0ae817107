package usecase

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func TestStartUsecaseSpan(t *testing.T) {
	t.Run("untraced request stays untraced", func(t *testing.T) {
		ctx := context.Background()
		got, span := startUsecaseSpan(ctx, "usecase.SeasonService.Complete", attribute.String("season.id", "s-1"))
		if got != ctx {
			t.Fatalf("expected context unchanged")
		}
		if span.SpanContext().IsValid() {
			t.Fatalf("expected no span for untraced request")
		}
	})

	t.Run("traced request keeps its trace", func(t *testing.T) {
		parent := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    trace.TraceID{0x0f, 0x1a},
			SpanID:     trace.SpanID{0x02},
			TraceFlags: trace.FlagsSampled,
		})
		ctx := trace.ContextWithSpanContext(context.Background(), parent)

		got, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
		defer span.End()
		if id := trace.SpanContextFromContext(got).TraceID(); id != parent.TraceID() {
			t.Fatalf("expected trace %s, got %s", parent.TraceID(), id)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{0x01},
			SpanID:  trace.SpanID{0x01},
		}))
		if _, span := startUsecaseSpan(ctx, "  "); span != usecaseNoopSpan {
			t.Fatalf("expected shared no-op span for blank name")
		}
	})
}
