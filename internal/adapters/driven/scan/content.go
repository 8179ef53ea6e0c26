package scan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// contextHalfWidth is taken on each side of a matched span when
// extracting a context snippet. Derived from an 80-column budget minus
// two "..." markers and two tab stops, halved.
const contextHalfWidth = (80 - 6 - 8) / 2

// Ensure ContentSearcher implements the interface.
var _ driven.ContentSearcher = (*ContentSearcher)(nil)

// ContentSearcher walks a docset's page tree and classifies every page
// as an exact (filename) or vague (in-body) match.
type ContentSearcher struct {
	ext string
}

// NewContentSearcher creates a content searcher for pages carrying ext.
func NewContentSearcher(ext string) *ContentSearcher {
	return &ContentSearcher{ext: ext}
}

// Search performs a depth-first walk of docsetPath, driven by an
// explicit directory worklist so deep trees cannot exhaust the stack.
// Subdirectories are always descended into; regular files without the
// page extension are skipped. Any unreadable directory or file aborts
// the whole scan with an error naming the path.
func (s *ContentSearcher) Search(_ context.Context, docsetPath, query string, caseInsensitive bool) ([]domain.ExactResult, []domain.VagueResult, error) {
	if caseInsensitive {
		query = strings.ToLower(query)
	}

	exact := []domain.ExactResult{}
	vague := []domain.VagueResult{}

	pending := []string{docsetPath}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("read directory `%s`: %w", dir, err)
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			if entry.IsDir() {
				pending = append(pending, path)
				continue
			}

			name := entry.Name()
			if !strings.HasSuffix(name, s.ext) {
				continue
			}
			if caseInsensitive {
				name = strings.ToLower(name)
			}

			if strings.Contains(name, query) {
				item, err := s.pathToItem(docsetPath, path)
				if err != nil {
					return nil, nil, err
				}
				exact = append(exact, domain.ExactResult{Item: item})
				continue
			}

			contexts, err := scanFile(path, query, caseInsensitive)
			if err != nil {
				return nil, nil, err
			}
			if len(contexts) > 0 {
				item, err := s.pathToItem(docsetPath, path)
				if err != nil {
					return nil, nil, err
				}
				vague = append(vague, domain.VagueResult{Item: item, Contexts: contexts})
			}
		}
	}

	domain.SortExactResults(exact)
	domain.SortVagueResults(vague)
	logger.Debug("content search: %d exact, %d vague", len(exact), len(vague))

	return exact, vague, nil
}

// pathToItem converts an absolute page path into an item: the path
// relative to the docset root with the file extension stripped.
func (s *ContentSearcher) pathToItem(docsetPath, path string) (string, error) {
	rel, err := filepath.Rel(docsetPath, path)
	if err != nil {
		return "", fmt.Errorf("relativise `%s`: %w", path, err)
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), s.ext), nil
}

// scanFile reads the page line by line and extracts one bounded context
// per matching line, in read order.
func scanFile(path, query string, caseInsensitive bool) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open `%s`: %w", path, err)
	}
	defer file.Close()

	var contexts []string

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			haystack := line
			if caseInsensitive {
				haystack = strings.ToLower(line)
			}
			if idx := strings.Index(haystack, query); idx >= 0 {
				contexts = append(contexts, contextWindow(line, idx, len(query)))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read `%s`: %w", path, err)
		}
	}

	return contexts, nil
}

// contextWindow extracts up to contextHalfWidth bytes of context on
// each side of the matched span, widening both cuts to the nearest
// rune boundary so a multi-byte character is never split, and trims
// surrounding whitespace. Short lines come back whole.
func contextWindow(line string, index, queryLen int) string {
	lower := index - contextHalfWidth
	if lower < 0 {
		lower = 0
	}
	upper := index + queryLen + contextHalfWidth
	if upper > len(line) {
		upper = len(line)
	}

	for lower > 0 && !utf8.RuneStart(line[lower]) {
		lower--
	}
	for upper < len(line) && !utf8.RuneStart(line[upper]) {
		upper++
	}

	return strings.TrimSpace(line[lower:upper])
}
