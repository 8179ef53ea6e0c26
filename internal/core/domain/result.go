package domain

import (
	"sort"
	"strings"
)

// PageExtension is the file extension carried by rendered docset pages.
const PageExtension = ".html"

// ExactResult is a match on a page's name or on its indexed path.
// Item is a docset-relative path with the file extension stripped.
type ExactResult struct {
	// Item addresses the page within its docset.
	Item string `json:"item"`

	// Fragment is the anchor portion of the indexed path, when the
	// path encoded one. Nil means the match addresses the whole page.
	Fragment *string `json:"fragment"`
}

// Less orders exact results by (item, fragment), ascending.
// An absent fragment sorts before a present one.
func (r ExactResult) Less(other ExactResult) bool {
	if r.Item != other.Item {
		return r.Item < other.Item
	}
	if r.Fragment == nil {
		return other.Fragment != nil
	}
	if other.Fragment == nil {
		return false
	}
	return *r.Fragment < *other.Fragment
}

// VagueResult is a match found inside a page's body text.
// Contexts preserves file-read order, top to bottom.
type VagueResult struct {
	Item     string   `json:"item"`
	Contexts []string `json:"contexts"`
}

// SearchFlags are the switches that change which results a search
// produces or how a result is addressed for opening.
//
// Every flag with that property must live here: the struct is part of
// the cache fingerprint, and a flag left out would let a stale cache
// satisfy a search it no longer matches.
type SearchFlags struct {
	CaseInsensitive bool `json:"case_insensitive"`
	Precise         bool `json:"precise"`
	Whole           bool `json:"whole"`
	IgnoreFragment  bool `json:"ignore_fragment"`
}

// SearchOptions is the cache fingerprint. Two option sets are equal
// iff query, docset and every flag are equal by value.
type SearchOptions struct {
	Query  string      `json:"query"`
	Docset string      `json:"docset"`
	Flags  SearchFlags `json:"flags"`
}

// SearchCache is the persisted result payload. It is only meaningful
// when paired with the SearchOptions it was computed for.
type SearchCache struct {
	ExactResults []ExactResult `json:"exact_results"`
	VagueResults []VagueResult `json:"vague_results"`
}

// ResultSet holds the two result categories under the shared numbering
// scheme: exact results occupy indices 1..E, vague results E+1..E+V.
type ResultSet struct {
	Exact []ExactResult
	Vague []VagueResult
}

// Total returns the number of addressable results.
func (s ResultSet) Total() int {
	return len(s.Exact) + len(s.Vague)
}

// Selection is a resolved numbered result, ready for opening.
type Selection struct {
	Item     string
	Fragment *string
}

// Resolve maps a 1-based index onto the combined exact+vague sequence.
// For an exact result, ignoreFragment drops the fragment so the whole
// page opens; vague results never carry a fragment. Returns false when
// n is out of range.
func (s ResultSet) Resolve(n int, ignoreFragment bool) (Selection, bool) {
	if n < 1 || n > s.Total() {
		return Selection{}, false
	}
	if n <= len(s.Exact) {
		r := s.Exact[n-1]
		if ignoreFragment {
			return Selection{Item: r.Item}, true
		}
		return Selection{Item: r.Item, Fragment: r.Fragment}, true
	}
	return Selection{Item: s.Vague[n-len(s.Exact)-1].Item}, true
}

// SortExactResults sorts in place by (item, fragment), ascending.
func SortExactResults(results []ExactResult) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Less(results[j])
	})
}

// SortVagueResults sorts in place by item, ascending.
func SortVagueResults(results []VagueResult) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Item < results[j].Item
	})
}

// SplitFragment splits an indexed path into its item and anchor parts.
// There is at most one split point; everything after the first '#'
// belongs to the fragment. Paths without an anchor yield a nil fragment.
func SplitFragment(path string) (string, *string) {
	item, fragment, found := strings.Cut(path, "#")
	if !found {
		return item, nil
	}
	return item, &fragment
}
