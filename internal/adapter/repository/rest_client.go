package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"marketdesk/pkg/errors"
)

// restClient is the shared transport for the upstream marketplace API.
// Deliberately thin: no signing, no token refresh, no retries.
type restClient struct {
	baseURL string
	http    *http.Client
}

func newRestClient(baseURL string, timeout time.Duration) *restClient {
	return &restClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type statusPayload struct {
	Status string `json:"status"`
}

type upstreamError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *restClient) getJSON(ctx context.Context, path string, filter map[string]string, out interface{}) error {
	u := c.baseURL + path
	if len(filter) > 0 {
		values := url.Values{}
		for key, value := range filter {
			values.Set(key, value)
		}
		u += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Internal("Failed to build upstream request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upstream returned %d: %s", resp.StatusCode, readUpstreamMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding upstream response: %w", err)
	}
	return nil
}

func (c *restClient) send(ctx context.Context, method, path string, body interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Internal("Failed to encode upstream request", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Internal("Failed to build upstream request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upstream returned %d: %s", resp.StatusCode, readUpstreamMessage(resp.Body))
	}
	return nil
}

func readUpstreamMessage(body io.Reader) string {
	var payload upstreamError
	if err := json.NewDecoder(body).Decode(&payload); err != nil || payload.Error.Message == "" {
		return "no error detail"
	}
	return payload.Error.Message
}
