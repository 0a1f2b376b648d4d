package ports

import "context"

// CatalogFetcher retrieves the raw gitmoji document from its remote source.
type CatalogFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}
