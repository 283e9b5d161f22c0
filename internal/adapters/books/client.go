package books

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"bookclub/internal/domain/book"
)

// DefaultBaseURL is the Google Books volumes endpoint root.
const DefaultBaseURL = "https://www.googleapis.com"

// Client looks up descriptive book metadata in the Google Books catalog.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a catalog client. A nil httpClient gets a bounded default.
func NewClient(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
	}
}

// WithBaseURL overrides the API endpoint (tests).
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// volumesResponse mirrors the subset of the Books API response we read.
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			Description   string   `json:"description"`
			Categories    []string `json:"categories"`
			PublishedDate string   `json:"publishedDate"`
			PageCount     int      `json:"pageCount"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Lookup queries the catalog for one volume matching the exact title phrase
// and, when given, the author. Absence of enrichment is not an error: missing
// credential, transport failure, non-200 status, and an empty result set all
// report found=false.
// POST: found implies a Metadata with zero-value defaults for missing fields
func (c *Client) Lookup(ctx context.Context, title, author string) (book.Metadata, bool) {
	if c.apiKey == "" {
		return book.Metadata{}, false
	}

	q := `intitle:"` + title + `"`
	if author != "" {
		q += " inauthor:" + author
	}
	params := url.Values{
		"q":          {q},
		"maxResults": {"1"},
		"key":        {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/books/v1/volumes?"+params.Encode(), nil)
	if err != nil {
		return book.Metadata{}, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("books_lookup_failed", "error", err, "title", title)
		return book.Metadata{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("books_lookup_rejected", "status", resp.StatusCode, "title", title)
		return book.Metadata{}, false
	}

	var parsed volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		slog.Warn("books_lookup_bad_response", "error", err, "title", title)
		return book.Metadata{}, false
	}
	if len(parsed.Items) == 0 {
		return book.Metadata{}, false
	}

	info := parsed.Items[0].VolumeInfo
	return book.Metadata{
		Title:         info.Title,
		Authors:       info.Authors,
		Description:   info.Description,
		Categories:    info.Categories,
		PublishedDate: info.PublishedDate,
		PageCount:     info.PageCount,
	}, true
}
