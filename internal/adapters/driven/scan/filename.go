// Package scan implements the two search engines: filename search over
// a docset's index, and precise content search over its page files.
package scan

import (
	"strings"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// Ensure FilenameSearcher implements the interface.
var _ driven.FilenameSearcher = (*FilenameSearcher)(nil)

// FilenameSearcher matches a query against the docset's filename index.
// It never reads page content.
type FilenameSearcher struct {
	catalog driven.IndexCatalog
}

// NewFilenameSearcher creates a filename searcher backed by catalog.
func NewFilenameSearcher(catalog driven.IndexCatalog) *FilenameSearcher {
	return &FilenameSearcher{catalog: catalog}
}

// Search returns every index entry whose name or path contains query as
// a substring, sorted by (item, fragment). With caseInsensitive both
// sides are folded before testing; original casing is preserved in the
// output. No matches yields an empty, non-error result.
func (s *FilenameSearcher) Search(docsetPath, query string, caseInsensitive bool) ([]domain.ExactResult, error) {
	idx, err := s.catalog.Load(docsetPath)
	if err != nil {
		return nil, err
	}

	if caseInsensitive {
		query = strings.ToLower(query)
	}

	results := []domain.ExactResult{}
	for _, entry := range idx.Entries {
		name, path := entry.Name, entry.Path
		if caseInsensitive {
			name = strings.ToLower(name)
			path = strings.ToLower(path)
		}

		if !strings.Contains(name, query) && !strings.Contains(path, query) {
			continue
		}

		item, fragment := domain.SplitFragment(entry.Path)
		results = append(results, domain.ExactResult{Item: item, Fragment: fragment})
	}

	domain.SortExactResults(results)
	logger.Debug("filename search: %d of %d entries matched", len(results), len(idx.Entries))

	return results, nil
}
