package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/ports"
)

// ImagesPath is the catalog endpoint relative to the server base URL
const ImagesPath = "/api/images"

// FetchFailedError reports a catalog retrieval that did not produce a
// catalog: transport error, non-success status or a malformed body.
type FetchFailedError struct {
	StatusCode int    // 0 when no response was received
	Message    string // Server supplied error message, if any
	Err        error
}

func (e *FetchFailedError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("failed to fetch images: %s (status %d)", e.Message, e.StatusCode)
	case e.StatusCode != 0:
		return fmt.Sprintf("failed to fetch images: status %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("failed to fetch images: %v", e.Err)
	default:
		return "failed to fetch images"
	}
}

func (e *FetchFailedError) Unwrap() error {
	return e.Err
}

// Client retrieves catalogs from a running gallery server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.CatalogSource = (*Client)(nil)

// New creates a client for the server at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient swaps the underlying HTTP client (used by tests)
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// FetchCatalog performs one GET of the catalog. It never retries.
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ImagesPath, nil)
	if err != nil {
		return nil, &FetchFailedError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchFailedError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchFailedError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &apiErr)
		return nil, &FetchFailedError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	var assets []domain.Asset
	if err := json.Unmarshal(body, &assets); err != nil {
		return nil, &FetchFailedError{StatusCode: resp.StatusCode, Err: fmt.Errorf("malformed catalog: %w", err)}
	}
	if assets == nil {
		return nil, &FetchFailedError{StatusCode: resp.StatusCode, Err: errors.New("malformed catalog: not a JSON array")}
	}

	return assets, nil
}

// Catalog implements ports.CatalogSource
func (c *Client) Catalog(ctx context.Context) ([]domain.Asset, error) {
	return c.FetchCatalog(ctx)
}
