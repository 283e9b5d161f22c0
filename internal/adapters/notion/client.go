package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"bookclub/internal/domain/book"
)

// API constants for the Notion page-creation endpoint.
const (
	DefaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
	maxErrorBody   = 2048
)

// ErrNotConfigured signals that mirroring is disabled because the token or
// destination database id is missing. No network call is attempted.
var ErrNotConfigured = errors.New("notion credentials not configured")

// Client mirrors book entries into a Notion database.
type Client struct {
	httpClient *http.Client
	token      string
	databaseID string
	baseURL    string
}

// NewClient creates a Notion client. A nil httpClient gets a bounded default;
// external calls must never stall a serving goroutine indefinitely.
// PRE: token and databaseID may be empty (mirroring then reports ErrNotConfigured)
// POST: Returns a ready-to-use client
func NewClient(token, databaseID string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		token:      token,
		databaseID: databaseID,
		baseURL:    DefaultBaseURL,
	}
}

// WithBaseURL overrides the API endpoint (tests).
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// Configured reports whether both credentials are present.
func (c *Client) Configured() bool {
	return c.token != "" && c.databaseID != ""
}

// Mirror writes one book entry as a new Notion page.
// PRE: entry has been validated
// POST: nil on HTTP 200; ErrNotConfigured without any network call when
// credentials are missing; otherwise an error carrying status and body
func (c *Client) Mirror(ctx context.Context, entry book.Entry) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload := buildPageRequest(c.databaseID, entry)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notion: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notion: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("notion_mirror_failed", "error", err, "title", entry.Title)
		return fmt.Errorf("notion: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.Error("notion_mirror_rejected", "status", resp.StatusCode, "title", entry.Title)
		return fmt.Errorf("notion: status %d: %s", resp.StatusCode, string(respBody))
	}

	slog.Info("notion_mirrored", "member", entry.MemberName, "title", entry.Title)
	return nil
}
