package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/F3lipe9/campuslog/internal/models"
)

// HTTPClient implements DataSource by calling the CampusLog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server. The login is forwarded as the
// X-User identity header; the userID arguments are ignored because the
// server resolves identity from that header.
type HTTPClient struct {
	baseURL    string
	login      string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL,
// acting as the given login.
func NewHTTPClient(baseURL, login string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		login:      login,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if c.login != "" {
		req.Header.Set("X-User", c.login)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func timeParams(start, end time.Time) url.Values {
	v := url.Values{}
	v.Set("start", start.Format(time.RFC3339))
	v.Set("end", end.Format(time.RFC3339))
	return v
}

func (c *HTTPClient) ListExercises(ctx context.Context, _ int) ([]models.Exercise, error) {
	body, err := c.get(ctx, "/api/v1/exercises", nil)
	if err != nil {
		return nil, err
	}

	var exercises []models.Exercise
	if err := json.Unmarshal(body, &exercises); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return exercises, nil
}

func (c *HTTPClient) ExerciseHistory(ctx context.Context, exerciseID uuid.UUID, _ int) ([]models.WorkoutSet, error) {
	body, err := c.get(ctx, "/api/v1/exercises/"+exerciseID.String()+"/history", nil)
	if err != nil {
		return nil, err
	}

	var history []models.WorkoutSet
	if err := json.Unmarshal(body, &history); err != nil {
		return nil, fmt.Errorf("httpclient: decode history: %w", err)
	}
	return history, nil
}

func (c *HTTPClient) DailyWaterTotals(ctx context.Context, _ int, start, end time.Time) ([]models.DailyWaterTotal, error) {
	body, err := c.get(ctx, "/api/v1/water/summary", timeParams(start, end))
	if err != nil {
		return nil, err
	}

	var totals []models.DailyWaterTotal
	if err := json.Unmarshal(body, &totals); err != nil {
		return nil, fmt.Errorf("httpclient: decode water summary: %w", err)
	}
	return totals, nil
}

func (c *HTTPClient) UpcomingDeadlines(ctx context.Context, _ int, horizon time.Duration) ([]models.Deadline, error) {
	days := int(horizon.Hours() / 24)
	if days < 1 {
		days = 1
	}
	params := url.Values{}
	params.Set("days", strconv.Itoa(days))

	body, err := c.get(ctx, "/api/v1/planner/upcoming", params)
	if err != nil {
		return nil, err
	}

	var deadlines []models.Deadline
	if err := json.Unmarshal(body, &deadlines); err != nil {
		return nil, fmt.Errorf("httpclient: decode deadlines: %w", err)
	}
	return deadlines, nil
}
