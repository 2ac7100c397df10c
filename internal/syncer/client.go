package syncer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/F3lipe9/campuslog/internal/models"
)

// Client sends import batches to the CampusLog server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	login      string
	httpClient *http.Client
}

// NewClient creates a new HTTP client for the CampusLog server. The
// login is sent as the X-User identity header so entries land in the
// right account.
func NewClient(serverURL, apiKey, login string) *Client {
	return &Client{
		serverURL: serverURL,
		apiKey:    apiKey,
		login:     login,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SendBatch POSTs an ImportPayload to the server's import endpoint.
// Retries up to 3 times with exponential backoff on failure.
func (c *Client) SendBatch(payload *models.ImportPayload) (*models.ImportResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequest(http.MethodPost, c.serverURL+"/api/v1/import/", bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", c.apiKey)
		if c.login != "" {
			req.Header.Set("X-User", c.login)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("import request failed (status %d): %s", resp.StatusCode, body)
			// Client errors won't improve on retry.
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return nil, lastErr
			}
			continue
		}

		var result models.ImportResult
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("decoding import result: %w", err)
		}
		return &result, nil
	}

	return nil, fmt.Errorf("sending batch after 3 attempts: %w", lastErr)
}
