package driven

import (
	"context"
	"io"
	"time"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// DocsetStore manages the locally materialised docset directories.
type DocsetStore interface {
	// Path resolves a docset name to its on-disk root directory.
	// The directory is not required to exist.
	Path(name string) (string, error)

	// IsDownloaded reports whether the docset directory exists locally.
	IsDownloaded(name string) (bool, error)

	// ListLocal returns the names of downloaded docsets, sorted.
	ListLocal() ([]string, error)

	// Remove deletes a downloaded docset directory.
	Remove(name string) error

	// Extract unpacks a gzip-compressed tarball of rendered pages into
	// the docset directory, creating it as needed.
	Extract(name string, tarball io.Reader) error

	// WriteIndex places the filename index inside the docset directory.
	WriteIndex(name string, index []byte) error
}

// RegistryStore persists the docset registry fetched from the mirror.
type RegistryStore interface {
	// Load reads the registry. Returns domain.ErrNotFetched when no
	// registry has been stored yet.
	Load() ([]domain.RegistryEntry, error)

	// Save overwrites the stored registry.
	Save(entries []domain.RegistryEntry) error

	// ModTime returns when the registry was last saved.
	// Returns domain.ErrNotFetched when no registry is stored.
	ModTime() (time.Time, error)
}

// MirrorClient talks to the docset mirror over HTTP.
type MirrorClient interface {
	// FetchRegistry downloads the registry of available docsets.
	FetchRegistry(ctx context.Context) ([]domain.RegistryEntry, error)

	// FetchDocset downloads the docset tarball for a registry entry.
	// The caller owns the returned reader.
	FetchDocset(ctx context.Context, entry domain.RegistryEntry) (io.ReadCloser, error)

	// FetchIndex downloads the docset's filename index record.
	FetchIndex(ctx context.Context, entry domain.RegistryEntry) ([]byte, error)
}

// PageRenderer renders a resolved page to the user's terminal.
type PageRenderer interface {
	// Render writes the page addressed by (docsetPath, item, fragment)
	// to the output, wrapped to width columns. A non-nil fragment
	// starts output at the matching anchor.
	Render(docsetPath, item string, fragment *string, width int) error
}
