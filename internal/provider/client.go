// Package provider contains the HTTP client for the downstream messaging
// provider (the Twilio/Sendgrid-style service that actually delivers
// messages to handsets and inboxes).
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"msghub/internal/store"
	"msghub/pkg/api"
)

// Client posts stored outbound messages to the configured provider endpoint.
//
// An empty base URL puts the client in stub mode: every delivery reports
// success without a network call. This mirrors a provider sandbox and is the
// default in development.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a new provider client for the given endpoint.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Deliver posts the message to the provider and returns the provider's HTTP
// status code. A transport-level failure is returned as an error; provider
// error statuses (429, 500, ...) are returned as the status code so the
// caller can decide how to surface them.
func (c *Client) Deliver(ctx context.Context, msg *store.Message) (int, error) {
	if c.BaseURL == "" {
		return http.StatusOK, nil
	}

	payload := api.SendMessageRequest{
		From:        msg.FromAddress,
		To:          msg.ToAddress,
		Type:        string(msg.MsgType),
		Body:        msg.Body,
		Attachments: msg.Attachments,
		Timestamp:   msg.Timestamp,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/messages/%s", c.BaseURL, msg.MsgType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// The response body is not used, but must be drained so the
	// connection can be reused.
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
