package docsets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/index"
	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

const (
	// requestRate throttles mirror requests; the mirror is a shared
	// free service and a download issues several requests in a row.
	requestRate = 2.0

	// requestBurst allows a docset's tarball and index to be fetched
	// back to back without waiting.
	requestBurst = 2

	userAgent = "docdex"
)

// Ensure Client implements the interface.
var _ driven.MirrorClient = (*Client)(nil)

// Client downloads registry and docset records from the mirror.
type Client struct {
	registryURL  string
	downloadsURL string
	httpClient   *http.Client
	limiter      *rate.Limiter
}

// NewClient creates a rate-limited mirror client.
func NewClient(registryURL, downloadsURL string) *Client {
	return &Client{
		registryURL:  registryURL,
		downloadsURL: downloadsURL,
		httpClient:   &http.Client{Timeout: 5 * time.Minute},
		limiter:      rate.NewLimiter(rate.Limit(requestRate), requestBurst),
	}
}

// FetchRegistry downloads and parses the docset registry.
func (c *Client) FetchRegistry(ctx context.Context) ([]domain.RegistryEntry, error) {
	body, err := c.get(ctx, c.registryURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var entries []domain.RegistryEntry
	if err := json.NewDecoder(body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: parse registry from %s: %v", domain.ErrFormat, c.registryURL, err)
	}

	logger.Info("fetched registry: %d docsets available", len(entries))
	return entries, nil
}

// FetchDocset downloads the docset tarball. The entry's mtime is
// appended as a cache buster, matching the mirror's link scheme.
func (c *Client) FetchDocset(ctx context.Context, entry domain.RegistryEntry) (io.ReadCloser, error) {
	url := fmt.Sprintf("%s/%s.tar.gz?%d", c.downloadsURL, entry.Slug, entry.Mtime)
	return c.get(ctx, url)
}

// FetchIndex downloads the docset's filename index record.
func (c *Client) FetchIndex(ctx context.Context, entry domain.RegistryEntry) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s?%d", c.downloadsURL, entry.Slug, index.ManifestName, entry.Mtime)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	logger.Debug("GET %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	return resp.Body, nil
}
