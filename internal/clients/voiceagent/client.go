package voiceagent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/pkg/config"
	"github.com/zafesys/suite/pkg/transport"
)

const (
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	maxErrorBody        = 512
)

var ErrNotConfigured = errors.New("voice agent api key is not configured")

// Client fetches finished conversations from the voice agent platform.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg config.VoiceAgent) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(nil)

	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil || resp.StatusCode >= http.StatusInternalServerError {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

type conversationResponse struct {
	ConversationID string            `json:"conversation_id"`
	AgentID        *string           `json:"agent_id"`
	Status         *string           `json:"status"`
	Transcript     entity.Transcript `json:"transcript"`
	Analysis       *struct {
		TranscriptSummary     string `json:"transcript_summary"`
		DataCollectionResults map[string]struct {
			Value any `json:"value"`
		} `json:"data_collection_results"`
	} `json:"analysis"`
}

// Conversation loads the transcript and collected data of a conversation.
func (c *Client) Conversation(ctx context.Context, conversationID string) (entity.VoiceConversation, error) {
	if c.apiKey == "" {
		return entity.VoiceConversation{}, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/v1/convai/conversations/%s", c.baseURL, url.PathEscape(conversationID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.VoiceConversation{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.VoiceConversation{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entity.VoiceConversation{}, fmt.Errorf("conversation %s: %w", conversationID, entity.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return entity.VoiceConversation{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var r conversationResponse

	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return entity.VoiceConversation{}, fmt.Errorf("failed to decode response: %w", err)
	}

	conv := entity.VoiceConversation{
		ConversationID: firstNonEmpty(r.ConversationID, conversationID),
		AgentID:        r.AgentID,
		Status:         r.Status,
		Transcript:     r.Transcript,
	}

	if r.Analysis != nil {
		if r.Analysis.TranscriptSummary != "" {
			conv.Notes = &r.Analysis.TranscriptSummary
		}

		if len(r.Analysis.DataCollectionResults) > 0 {
			conv.DataCollection = make(map[string]any, len(r.Analysis.DataCollectionResults))
			for k, v := range r.Analysis.DataCollectionResults {
				conv.DataCollection[k] = v.Value
			}
		}
	}

	return conv, nil
}

func firstNonEmpty(v ...string) string {
	for _, s := range v {
		if s != "" {
			return s
		}
	}

	return ""
}
