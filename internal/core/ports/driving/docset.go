package driving

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// DocsetService manages the registry and local docset directories.
type DocsetService interface {
	// Fetch downloads the docset registry. Unless force is set, a
	// registry younger than the freshness window is left alone and
	// domain.ErrRegistryFresh is returned.
	Fetch(ctx context.Context, force bool) error

	// List returns the registry entries; localOnly restricts the list
	// to docsets downloaded on this machine.
	List(ctx context.Context, localOnly bool) ([]domain.RegistryEntry, error)

	// Download materialises the named docset locally. Unless force is
	// set, an already-downloaded docset returns domain.ErrAlreadyDownloaded.
	Download(ctx context.Context, name string, force bool) error

	// Remove deletes a downloaded docset.
	Remove(ctx context.Context, name string) error
}
