package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Activity mirrors the wire shape returned by GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Result carries the status code plus whichever body field the server set.
type Result struct {
	StatusCode int
	Message    string
	Detail     string
}

// Client is a thin HTTP client for the activities API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Activities fetches the full roster.
func (c *Client) Activities(ctx context.Context) (map[string]Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /activities: unexpected status %d", resp.StatusCode)
	}

	var out map[string]Activity
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("GET /activities: decode body: %w", err)
	}
	return out, nil
}

// Signup posts a signup for email in activity.
func (c *Client) Signup(ctx context.Context, activity, email string) (Result, error) {
	target := fmt.Sprintf("%s/activities/%s/signup?email=%s",
		c.baseURL, url.PathEscape(activity), url.QueryEscape(email))
	return c.do(ctx, http.MethodPost, target)
}

// Remove deletes email from activity's roster.
func (c *Client) Remove(ctx context.Context, activity, email string) (Result, error) {
	target := fmt.Sprintf("%s/activities/%s/participants/%s",
		c.baseURL, url.PathEscape(activity), url.PathEscape(email))
	return c.do(ctx, http.MethodDelete, target)
}

func (c *Client) do(ctx context.Context, method, target string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return Result{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	// Bodies are tiny; a decode failure only matters if the status needs it.
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return Result{
		StatusCode: resp.StatusCode,
		Message:    body.Message,
		Detail:     body.Detail,
	}, nil
}
