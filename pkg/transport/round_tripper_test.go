package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/pkg/logger"
	"github.com/zafesys/suite/pkg/transport"
)

//nolint:paralleltest
func TestLoggingRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	_, err := logger.NewWithWriter(buf, "info")
	require.NoError(t, err)

	var gotReqID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewLoggingRoundTripper(nil),
	}

	ctx := logger.WithRequestID(context.Background(), "abc-123")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/conversations", strings.NewReader(`{}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, "abc-123", gotReqID)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var out, in map[string]any

	require.NoError(t, json.Unmarshal([]byte(lines[0]), &out))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &in))

	require.Equal(t, "outgoing request", out["msg"])
	require.Equal(t, "POST "+server.URL+"/conversations", out["request"])
	require.Equal(t, "abc-123", out["request_id"])
	require.Equal(t, "incoming response", in["msg"])
	require.InDelta(t, http.StatusAccepted, in["status"], 0)
}
