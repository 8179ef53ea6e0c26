package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// registryMaxAge is the freshness window within which fetch refuses to
// re-download the registry without --force.
const registryMaxAge = 7 * 24 * time.Hour

// Ensure DocsetService implements the interface.
var _ driving.DocsetService = (*DocsetService)(nil)

// DocsetService manages the registry and the local docset directories.
type DocsetService struct {
	registry driven.RegistryStore
	client   driven.MirrorClient
	store    driven.DocsetStore
}

// NewDocsetService creates a new docset service.
func NewDocsetService(
	registry driven.RegistryStore,
	client driven.MirrorClient,
	store driven.DocsetStore,
) *DocsetService {
	return &DocsetService{
		registry: registry,
		client:   client,
		store:    store,
	}
}

// Fetch downloads and stores the docset registry.
func (s *DocsetService) Fetch(ctx context.Context, force bool) error {
	if !force {
		if mtime, err := s.registry.ModTime(); err == nil && time.Since(mtime) < registryMaxAge {
			return domain.ErrRegistryFresh
		}
	}

	entries, err := s.client.FetchRegistry(ctx)
	if err != nil {
		return err
	}
	return s.registry.Save(entries)
}

// List returns the registry entries, optionally restricted to docsets
// downloaded locally.
func (s *DocsetService) List(_ context.Context, localOnly bool) ([]domain.RegistryEntry, error) {
	entries, err := s.registry.Load()
	if err != nil {
		return nil, err
	}
	if !localOnly {
		return entries, nil
	}

	names, err := s.store.ListLocal()
	if err != nil {
		return nil, err
	}
	local := make(map[string]bool, len(names))
	for _, name := range names {
		local[name] = true
	}

	filtered := make([]domain.RegistryEntry, 0, len(names))
	for _, entry := range entries {
		if local[entry.Slug] {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

// Download materialises the named docset: tarball first, then the
// filename index alongside the extracted pages.
func (s *DocsetService) Download(ctx context.Context, name string, force bool) error {
	entries, err := s.registry.Load()
	if err != nil {
		return err
	}

	var entry *domain.RegistryEntry
	for i := range entries {
		if entries[i].Slug == name {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		return fmt.Errorf("%w: `%s`, see `list` for available docsets", domain.ErrDocsetNotFound, name)
	}

	downloaded, err := s.store.IsDownloaded(name)
	if err != nil {
		return err
	}
	if downloaded {
		if !force {
			return fmt.Errorf("%w: `%s`, use --force to overwrite", domain.ErrAlreadyDownloaded, name)
		}
		if err := s.store.Remove(name); err != nil {
			return err
		}
	}

	logger.Info("downloading docset `%s` (%d bytes)", name, entry.Size)
	tarball, err := s.client.FetchDocset(ctx, *entry)
	if err != nil {
		return err
	}
	defer tarball.Close()

	if err := s.store.Extract(name, tarball); err != nil {
		return err
	}

	indexData, err := s.client.FetchIndex(ctx, *entry)
	if err != nil {
		return err
	}
	return s.store.WriteIndex(name, indexData)
}

// Remove deletes a downloaded docset.
func (s *DocsetService) Remove(_ context.Context, name string) error {
	downloaded, err := s.store.IsDownloaded(name)
	if err != nil {
		return err
	}
	if !downloaded {
		return fmt.Errorf("%w: `%s`", domain.ErrNotDownloaded, name)
	}
	return s.store.Remove(name)
}
