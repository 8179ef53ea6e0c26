package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs searches against downloaded docsets, serving
// repeated identical searches from the result cache.
type SearchService struct {
	docsets  driven.DocsetStore
	filename driven.FilenameSearcher
	content  driven.ContentSearcher
	cache    driven.ResultCache
	renderer driven.PageRenderer
}

// NewSearchService creates a new search service.
func NewSearchService(
	docsets driven.DocsetStore,
	filename driven.FilenameSearcher,
	content driven.ContentSearcher,
	cache driven.ResultCache,
	renderer driven.PageRenderer,
) *SearchService {
	return &SearchService{
		docsets:  docsets,
		filename: filename,
		content:  content,
		cache:    cache,
		renderer: renderer,
	}
}

// Search probes the cache with the opts fingerprint and, on a miss,
// computes results with the engine selected by the precise flag, then
// stores them. A failed cache write degrades to a warning: the fresh
// results are still returned.
func (s *SearchService) Search(ctx context.Context, opts domain.SearchOptions) (domain.ResultSet, []string, error) {
	logger.Section("Search")
	logger.Debug("query %q in docset %q, flags %+v", opts.Query, opts.Docset, opts.Flags)

	path, err := s.docsets.Path(opts.Docset)
	if err != nil {
		return domain.ResultSet{}, nil, err
	}
	downloaded, err := s.docsets.IsDownloaded(opts.Docset)
	if err != nil {
		return domain.ResultSet{}, nil, err
	}
	if !downloaded {
		return domain.ResultSet{}, nil, fmt.Errorf("%w: `%s`, try `download %s`",
			domain.ErrNotDownloaded, opts.Docset, opts.Docset)
	}

	if cached, ok := s.cache.TryLoad(opts); ok {
		return domain.ResultSet{Exact: cached.ExactResults, Vague: cached.VagueResults}, nil, nil
	}

	var results domain.ResultSet
	if opts.Flags.Precise {
		exact, vague, err := s.content.Search(ctx, path, opts.Query, opts.Flags.CaseInsensitive)
		if err != nil {
			return domain.ResultSet{}, nil, err
		}
		results = domain.ResultSet{Exact: exact, Vague: vague}
	} else {
		exact, err := s.filename.Search(path, opts.Query, opts.Flags.CaseInsensitive)
		if err != nil {
			return domain.ResultSet{}, nil, err
		}
		results = domain.ResultSet{Exact: exact}
	}

	var warnings []string
	payload := domain.SearchCache{ExactResults: results.Exact, VagueResults: results.Vague}
	if err := s.cache.Store(opts, payload); err != nil {
		warnings = append(warnings, fmt.Sprintf("Could not write cache: %v.", err))
	}

	return results, warnings, nil
}

// Open renders the selected page of a docset to the terminal.
func (s *SearchService) Open(_ context.Context, docset string, sel domain.Selection, width int) error {
	path, err := s.docsets.Path(docset)
	if err != nil {
		return err
	}
	downloaded, err := s.docsets.IsDownloaded(docset)
	if err != nil {
		return err
	}
	if !downloaded {
		return fmt.Errorf("%w: `%s`, try `download %s`", domain.ErrNotDownloaded, docset, docset)
	}

	return s.renderer.Render(path, sel.Item, sel.Fragment, width)
}
