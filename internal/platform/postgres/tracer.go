// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package postgres

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/jackc/pgx/v5"
)

// Tracer counts database round trips and logs statements at debug level.
//
// A plain query and a whole [pgx.Batch] each count as one round trip.
type Tracer struct {
	logger     *slog.Logger
	roundTrips atomic.Int64
}

// NewTracer creates a tracer. A nil logger disables statement logging.
func NewTracer(logger *slog.Logger) *Tracer {
	return &Tracer{logger: logger}
}

// RoundTrips returns the number of queries and batches sent so far.
func (t *Tracer) RoundTrips() int64 {
	return t.roundTrips.Load()
}

// TraceQueryStart implements [pgx.QueryTracer].
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	t.roundTrips.Add(1)
	if t.logger != nil {
		t.logger.DebugContext(ctx, "sql_query", slog.String("sql", data.SQL), slog.Int("args", len(data.Args)))
	}
	return ctx
}

// TraceQueryEnd implements [pgx.QueryTracer].
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	if t.logger != nil && data.Err != nil {
		t.logger.DebugContext(ctx, "sql_query_failed", slog.Any("error", data.Err))
	}
}

// TraceBatchStart implements [pgx.BatchTracer].
func (t *Tracer) TraceBatchStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchStartData) context.Context {
	t.roundTrips.Add(1)
	if t.logger != nil && data.Batch != nil {
		t.logger.DebugContext(ctx, "sql_batch", slog.Int("queries", data.Batch.Len()))
	}
	return ctx
}

// TraceBatchQuery implements [pgx.BatchTracer].
func (t *Tracer) TraceBatchQuery(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchQueryData) {
	if t.logger != nil {
		t.logger.DebugContext(ctx, "sql_batch_query", slog.String("sql", data.SQL))
	}
}

// TraceBatchEnd implements [pgx.BatchTracer].
func (t *Tracer) TraceBatchEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceBatchEndData) {
	if t.logger != nil && data.Err != nil {
		t.logger.DebugContext(ctx, "sql_batch_failed", slog.Any("error", data.Err))
	}
}
