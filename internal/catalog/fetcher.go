package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	domainErrors "github.com/thomas-vilte/gitmoji/internal/errors"
)

// GitmojiURL is the canonical source of the gitmoji catalog.
const GitmojiURL = "https://raw.githubusercontent.com/carloscuesta/gitmoji/master/src/data/gitmojis.json"

// HTTPFetcher retrieves the catalog document over plain GET.
type HTTPFetcher struct {
	client *http.Client
	url    string
}

func NewHTTPFetcher(url string) *HTTPFetcher {
	if url == "" {
		url = GitmojiURL
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		url:    url,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, domainErrors.ErrCatalogFetch.WithError(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domainErrors.ErrCatalogFetch.WithError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			return
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, domainErrors.ErrCatalogStatus.WithError(fmt.Errorf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainErrors.ErrCatalogFetch.WithError(err)
	}

	return body, nil
}
