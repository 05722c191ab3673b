package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when no revalidation URL is set.
var ErrNotConfigured = errors.New("revalidation url is not set")

type Client struct {
	url        string
	secret     string
	httpClient *http.Client
}

type payload struct {
	Secret     string `json:"secret"`
	Collection string `json:"collection,omitempty"`
}

func NewClient(url, secret string) *Client {
	return &Client{
		url:        url,
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Enabled() bool {
	return c.url != ""
}

// Trigger asks the frontend to rebuild pages that show collection.
func (c *Client) Trigger(ctx context.Context, collection string) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload{Secret: c.secret, Collection: collection})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to trigger revalidation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revalidation failed with status code: %d", resp.StatusCode)
	}
	return nil
}
