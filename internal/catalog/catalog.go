package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	domainErrors "github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/thomas-vilte/gitmoji/internal/ports"
)

// document is the on-disk and over-the-wire shape of the catalog.
type document struct {
	Gitmojis []models.Gitmoji `json:"gitmojis"`
}

// Store owns the local gitmoji cache: fetch-once, reuse, explicit refresh.
type Store struct {
	cachePath string
	fetcher   ports.CatalogFetcher
}

func NewStore(cachePath string, fetcher ports.CatalogFetcher) *Store {
	return &Store{
		cachePath: cachePath,
		fetcher:   fetcher,
	}
}

// EnsureLoaded returns the cached catalog, fetching it first when the cache
// is absent or forceRefresh is set. A failed fetch or parse never touches an
// existing cache file: the document is validated before anything is written.
func (s *Store) EnsureLoaded(ctx context.Context, forceRefresh bool) ([]models.Gitmoji, error) {
	if forceRefresh || !s.cacheExists() {
		if err := s.refresh(ctx); err != nil {
			return nil, err
		}
	}

	return s.readCache()
}

// Search filters the catalog by a case-insensitive substring match against
// name and description. Order is preserved; an empty query matches all.
func (s *Store) Search(ctx context.Context, query string) ([]models.Gitmoji, error) {
	entries, err := s.EnsureLoaded(ctx, false)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	filtered := make([]models.Gitmoji, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), query) ||
			strings.Contains(strings.ToLower(entry.Description), query) {
			filtered = append(filtered, entry)
		}
	}

	return filtered, nil
}

func (s *Store) cacheExists() bool {
	_, err := os.Stat(s.cachePath)
	return err == nil
}

func (s *Store) refresh(ctx context.Context) error {
	slog.Debug("fetching gitmoji catalog", "path", s.cachePath)

	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	// Validate before writing so a bad fetch never clobbers a good cache.
	if _, err := parse(raw); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.cachePath), 0755); err != nil {
		return domainErrors.ErrCatalogWrite.WithError(err).WithContext("path", s.cachePath)
	}

	if err := os.WriteFile(s.cachePath, raw, 0644); err != nil {
		return domainErrors.ErrCatalogWrite.WithError(err).WithContext("path", s.cachePath)
	}

	slog.Debug("gitmoji catalog cached", "path", s.cachePath, "bytes", len(raw))
	return nil
}

func (s *Store) readCache() ([]models.Gitmoji, error) {
	data, err := os.ReadFile(s.cachePath)
	if err != nil {
		return nil, domainErrors.ErrCatalogRead.WithError(err).WithContext("path", s.cachePath)
	}

	return parse(data)
}

func parse(data []byte) ([]models.Gitmoji, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domainErrors.ErrCatalogParse.WithError(err)
	}

	if doc.Gitmojis == nil {
		return nil, domainErrors.ErrCatalogMissing
	}

	return doc.Gitmojis, nil
}
