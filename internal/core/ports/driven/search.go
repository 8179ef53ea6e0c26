package driven

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// IndexCatalog loads a docset's filename index from its manifest.
type IndexCatalog interface {
	// Load reads the filename index of the docset rooted at docsetPath.
	// Returns domain.ErrIncompatibleDocset when the manifest is absent
	// and domain.ErrFormat when it does not parse.
	Load(docsetPath string) (domain.Index, error)
}

// FilenameSearcher matches a docset's filename index against a query.
type FilenameSearcher interface {
	// Search returns every index entry whose name or path contains the
	// query, sorted by (item, fragment). No page content is read.
	Search(docsetPath, query string, caseInsensitive bool) ([]domain.ExactResult, error)
}

// ContentSearcher scans a docset's page files for a query.
type ContentSearcher interface {
	// Search walks every page under docsetPath. Pages whose file name
	// contains the query become exact results; pages mentioning the
	// query in their body become vague results with bounded context
	// snippets. A single unreadable directory or file aborts the scan.
	Search(ctx context.Context, docsetPath, query string, caseInsensitive bool) ([]domain.ExactResult, []domain.VagueResult, error)
}

// ResultCache persists the most recent result set, keyed by the
// SearchOptions fingerprint.
type ResultCache interface {
	// TryLoad returns the cached payload when the stored fingerprint
	// structurally equals opts. Any read or parse failure is a miss,
	// never an error.
	TryLoad(opts domain.SearchOptions) (domain.SearchCache, bool)

	// Store overwrites the cache with the given fingerprint and payload.
	Store(opts domain.SearchOptions, cache domain.SearchCache) error
}
