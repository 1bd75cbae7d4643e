package pco

import (
	"context"
	"log/slog"
)

// Resource names one of the endpoints the client reads.
type Resource string

const (
	ResourcePlans       Resource = "plans"
	ResourceTeamMembers Resource = "team_members"
	ResourceItems       Resource = "items"
)

// CallEvent records metadata about a single API request.
type CallEvent struct {
	Resource   Resource
	Path       string
	StatusCode int
	LatencyMs  int64
	Success    bool
	ErrorCode  string
}

// Observer receives events about API calls for logging.
type Observer interface {
	OnCallComplete(ctx context.Context, event CallEvent)
}

// LogObserver writes call events to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs through logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(ctx context.Context, event CallEvent) {
	attrs := []any{
		"resource", string(event.Resource),
		"path", event.Path,
		"status", event.StatusCode,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		attrs = append(attrs, "error_code", event.ErrorCode)
		o.logger.WarnContext(ctx, "pco_call", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "pco_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(context.Context, CallEvent) {}
