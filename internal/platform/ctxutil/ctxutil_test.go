// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

package ctxutil_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travelist/tourcat/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0190f0c2-7d4e-7c1a-9d1e-3f5b2a1c9e77")
	assert.Equal(t, "0190f0c2-7d4e-7c1a-9d1e-3f5b2a1c9e77", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies the per-request logger and its default fallback.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	var sink bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&sink, nil))
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))

	ctxutil.GetLogger(ctx).Info("listing_served")
	assert.Contains(t, sink.String(), `"msg":"listing_served"`)
}
