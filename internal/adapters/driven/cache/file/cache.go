// Package file implements the search result cache as two JSON records
// in the program directory.
//
// Result payloads can be large, so the fingerprint lives in its own
// small record: a probe only pays for parsing the payload after the
// stored fingerprint matched.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

const (
	// OptionsName holds the fingerprint of the cached search.
	OptionsName = "search_cache_options.json"

	// ResultsName holds the cached result payload.
	ResultsName = "search_cache.json"
)

// Ensure Cache implements the interface.
var _ driven.ResultCache = (*Cache)(nil)

// Cache persists the last computed result set in dir.
//
// There is no locking and no atomicity across the two records; a
// mismatched or corrupted pair is converted into a miss by TryLoad's
// equality and parse checks.
type Cache struct {
	dir string
}

// New creates a cache rooted at dir.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// TryLoad returns the cached payload if the stored fingerprint equals
// opts. Every failure mode (missing records, unparsable JSON, stale
// fingerprint) is a miss, never an error: the caller recomputes.
func (c *Cache) TryLoad(opts domain.SearchOptions) (domain.SearchCache, bool) {
	data, err := os.ReadFile(filepath.Join(c.dir, OptionsName))
	if err != nil {
		return domain.SearchCache{}, false
	}

	var stored domain.SearchOptions
	if err := json.Unmarshal(data, &stored); err != nil {
		return domain.SearchCache{}, false
	}
	if stored != opts {
		logger.Debug("cache fingerprint mismatch, recomputing")
		return domain.SearchCache{}, false
	}

	data, err = os.ReadFile(filepath.Join(c.dir, ResultsName))
	if err != nil {
		return domain.SearchCache{}, false
	}

	var cache domain.SearchCache
	if err := json.Unmarshal(data, &cache); err != nil {
		logger.Debug("cache payload unparsable, recomputing")
		return domain.SearchCache{}, false
	}

	logger.Debug("cache hit: %d exact, %d vague", len(cache.ExactResults), len(cache.VagueResults))
	return cache, true
}

// Store overwrites both records unconditionally. Errors carry the
// offending path; callers treat them as warnings, not failures.
func (c *Cache) Store(opts domain.SearchOptions, cache domain.SearchCache) error {
	optionsPath := filepath.Join(c.dir, OptionsName)
	data, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encode cache options: %w", err)
	}
	if err := os.WriteFile(optionsPath, data, 0600); err != nil {
		return fmt.Errorf("write cache options at `%s`: %w", optionsPath, err)
	}

	resultsPath := filepath.Join(c.dir, ResultsName)
	data, err = json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := os.WriteFile(resultsPath, data, 0600); err != nil {
		return fmt.Errorf("write cache at `%s`: %w", resultsPath, err)
	}

	return nil
}
