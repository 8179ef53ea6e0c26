package driving

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// SearchService runs searches against downloaded docsets.
type SearchService interface {
	// Search probes the result cache and, on a miss, computes and
	// caches results for opts. Non-fatal problems (a failed cache
	// write) come back as warning strings for deferred printing.
	Search(ctx context.Context, opts domain.SearchOptions) (domain.ResultSet, []string, error)

	// Open renders the selected page of a docset to the terminal.
	Open(ctx context.Context, docset string, sel domain.Selection, width int) error
}
