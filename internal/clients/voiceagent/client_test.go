package voiceagent_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/clients/voiceagent"
	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/pkg/config"
)

func newClient(baseURL, apiKey string, retries int) *voiceagent.Client {
	return voiceagent.NewClient(config.VoiceAgent{
		APIKey:        apiKey,
		BaseURL:       baseURL,
		Timeout:       time.Second,
		RetryAttempts: retries,
	})
}

func TestClient_Conversation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/convai/conversations/conv-1" || r.Header.Get("xi-api-key") != "secret" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"conversation_id": "conv-1",
			"status": "done",
			"transcript": [
				{"role": "agent", "message": "Hola, le habla Ana"},
				{"role": "user", "message": "me llamo Laura Gómez, quiero cotizar la OS566F"}
			],
			"analysis": {
				"transcript_summary": "Cliente interesada en cerradura biométrica",
				"data_collection_results": {
					"customer_phone": {"value": "3001234567"}
				}
			}
		}`))
	}))
	t.Cleanup(srv.Close)

	conv, err := newClient(srv.URL, "secret", 0).Conversation(context.Background(), "conv-1")
	require.NoError(t, err)
	require.Equal(t, "conv-1", conv.ConversationID)
	require.Len(t, conv.Transcript.Messages, 2)
	require.Equal(t, "3001234567", conv.DataCollection["customer_phone"])
	require.NotNil(t, conv.Notes)

	e := conv.Analyze()
	require.Equal(t, "Laura Gómez", e.Name)
	require.Equal(t, "3001234567", e.Phone)
	require.Equal(t, "OS566F", e.ProductInterest)
}

func TestClient_Conversation_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := newClient(srv.URL, "secret", 0).Conversation(context.Background(), "missing")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_Conversation_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		_, _ = w.Write([]byte(`{"conversation_id": "conv-2", "transcript": "hola"}`))
	}))
	t.Cleanup(srv.Close)

	conv, err := newClient(srv.URL, "secret", 2).Conversation(context.Background(), "conv-2")
	require.NoError(t, err)
	require.Equal(t, "hola", conv.Transcript.String())
	require.Equal(t, int32(2), calls.Load())
}

func TestClient_Conversation_NotConfigured(t *testing.T) {
	t.Parallel()

	_, err := newClient("http://127.0.0.1:1", "", 0).Conversation(context.Background(), "conv-1")
	require.ErrorIs(t, err, voiceagent.ErrNotConfigured)
}
