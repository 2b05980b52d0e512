package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/pkg/logger"
)

func TestHandler_AddsContextFields(t *testing.T) { //nolint:paralleltest // replaces the default logger
	var buf bytes.Buffer

	l, err := logger.NewWithWriter(&buf, "debug")
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithUserID(ctx, 7)
	ctx = logger.WithTechnicianID(ctx, 12)

	l.With("component", "test").InfoContext(ctx, "hello")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "req-1", record["request_id"])
	require.InDelta(t, 7, record["user_id"], 0)
	require.InDelta(t, 12, record["technician_id"], 0)
	require.Equal(t, "test", record["component"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))

	slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.NewWithWriter(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}
