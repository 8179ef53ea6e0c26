package cli

import (
	"context"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// --- Mock driving services for command tests ---

type mockSearchService struct {
	results  domain.ResultSet
	warnings []string
	err      error

	gotOpts domain.SearchOptions

	openedDocset string
	openedSel    *domain.Selection
	openedWidth  int
	openErr      error
}

func (m *mockSearchService) Search(_ context.Context, opts domain.SearchOptions) (domain.ResultSet, []string, error) {
	m.gotOpts = opts
	return m.results, m.warnings, m.err
}

func (m *mockSearchService) Open(_ context.Context, docset string, sel domain.Selection, width int) error {
	m.openedDocset = docset
	m.openedSel = &sel
	m.openedWidth = width
	return m.openErr
}

type mockDocsetService struct {
	entries     []domain.RegistryEntry
	listErr     error
	fetchErr    error
	downloadErr error
	removeErr   error

	fetched    bool
	fetchForce bool
	downloaded []string
	removed    []string
}

func (m *mockDocsetService) Fetch(_ context.Context, force bool) error {
	m.fetched = true
	m.fetchForce = force
	return m.fetchErr
}

func (m *mockDocsetService) List(_ context.Context, _ bool) ([]domain.RegistryEntry, error) {
	return m.entries, m.listErr
}

func (m *mockDocsetService) Download(_ context.Context, name string, _ bool) error {
	if m.downloadErr != nil {
		return m.downloadErr
	}
	m.downloaded = append(m.downloaded, name)
	return nil
}

func (m *mockDocsetService) Remove(_ context.Context, name string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, name)
	return nil
}

// setupTestServices injects mock services and resets all command flags,
// returning a cleanup to undo both.
func setupTestServices() (*mockSearchService, *mockDocsetService, func()) {
	search := &mockSearchService{}
	docset := &mockDocsetService{}
	searchService = search
	docsetService = docset

	resetFlags := func() {
		verbose = false
		searchCaseInsensitive = false
		searchPrecise = false
		searchWhole = false
		searchIgnoreFragment = false
		searchOpen = ""
		searchColumns = ""
		openColumns = ""
		fetchForce = false
		listLocal = false
		downloadForce = false
	}
	resetFlags()

	return search, docset, func() {
		searchService = nil
		docsetService = nil
		resetFlags()
		rootCmd.SetArgs(nil)
	}
}

func fragment(s string) *string { return &s }
