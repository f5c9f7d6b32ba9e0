package logs

import (
	"context"
	"log/slog"
)

// Handler decorates every record with the span found in the context, so
// all records of one debugger session or run share a grepable id.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := ctx.Value(SpanKey).(Span); ok {
		record.Add("logs.span", span)
	}
	return h.Handler.Handle(ctx, record)
}
