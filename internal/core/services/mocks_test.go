package services

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

// --- Mock implementations of driven ports ---

type mockDocsetStore struct {
	path       string
	pathErr    error
	downloaded map[string]bool
	local      []string
	removed    []string
	extracted  map[string][]byte
	indexes    map[string][]byte
	removeErr  error
	extractErr error
}

func newMockDocsetStore() *mockDocsetStore {
	return &mockDocsetStore{
		path:       "/docsets",
		downloaded: map[string]bool{},
		extracted:  map[string][]byte{},
		indexes:    map[string][]byte{},
	}
}

func (m *mockDocsetStore) Path(name string) (string, error) {
	return m.path + "/" + name, m.pathErr
}

func (m *mockDocsetStore) IsDownloaded(name string) (bool, error) {
	return m.downloaded[name], nil
}

func (m *mockDocsetStore) ListLocal() ([]string, error) {
	return m.local, nil
}

func (m *mockDocsetStore) Remove(name string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, name)
	delete(m.downloaded, name)
	return nil
}

func (m *mockDocsetStore) Extract(name string, tarball io.Reader) error {
	if m.extractErr != nil {
		return m.extractErr
	}
	data, err := io.ReadAll(tarball)
	if err != nil {
		return err
	}
	m.extracted[name] = data
	m.downloaded[name] = true
	return nil
}

func (m *mockDocsetStore) WriteIndex(name string, index []byte) error {
	m.indexes[name] = index
	return nil
}

type mockFilenameSearcher struct {
	results []domain.ExactResult
	err     error

	gotPath  string
	gotQuery string
	gotCase  bool
	calls    int
}

func (m *mockFilenameSearcher) Search(path, query string, caseInsensitive bool) ([]domain.ExactResult, error) {
	m.gotPath, m.gotQuery, m.gotCase = path, query, caseInsensitive
	m.calls++
	return m.results, m.err
}

type mockContentSearcher struct {
	exact []domain.ExactResult
	vague []domain.VagueResult
	err   error
	calls int
}

func (m *mockContentSearcher) Search(_ context.Context, _, _ string, _ bool) ([]domain.ExactResult, []domain.VagueResult, error) {
	m.calls++
	return m.exact, m.vague, m.err
}

type mockResultCache struct {
	stored     map[domain.SearchOptions]domain.SearchCache
	storeErr   error
	loadCalls  int
	storeCalls int
}

func newMockResultCache() *mockResultCache {
	return &mockResultCache{stored: map[domain.SearchOptions]domain.SearchCache{}}
}

func (m *mockResultCache) TryLoad(opts domain.SearchOptions) (domain.SearchCache, bool) {
	m.loadCalls++
	cache, ok := m.stored[opts]
	return cache, ok
}

func (m *mockResultCache) Store(opts domain.SearchOptions, cache domain.SearchCache) error {
	m.storeCalls++
	if m.storeErr != nil {
		return m.storeErr
	}
	m.stored[opts] = cache
	return nil
}

type mockRenderer struct {
	gotPath     string
	gotItem     string
	gotFragment *string
	gotWidth    int
	err         error
}

func (m *mockRenderer) Render(docsetPath, item string, fragment *string, width int) error {
	m.gotPath, m.gotItem, m.gotFragment, m.gotWidth = docsetPath, item, fragment, width
	return m.err
}

type mockRegistryStore struct {
	entries []domain.RegistryEntry
	loadErr error
	saved   []domain.RegistryEntry
	mtime   time.Time
	mtErr   error
}

func (m *mockRegistryStore) Load() ([]domain.RegistryEntry, error) {
	return m.entries, m.loadErr
}

func (m *mockRegistryStore) Save(entries []domain.RegistryEntry) error {
	m.saved = entries
	return nil
}

func (m *mockRegistryStore) ModTime() (time.Time, error) {
	return m.mtime, m.mtErr
}

type mockMirrorClient struct {
	registry    []domain.RegistryEntry
	registryErr error
	tarball     []byte
	tarballErr  error
	index       []byte
	indexErr    error
	fetches     int
}

func (m *mockMirrorClient) FetchRegistry(_ context.Context) ([]domain.RegistryEntry, error) {
	m.fetches++
	return m.registry, m.registryErr
}

func (m *mockMirrorClient) FetchDocset(_ context.Context, _ domain.RegistryEntry) (io.ReadCloser, error) {
	if m.tarballErr != nil {
		return nil, m.tarballErr
	}
	return io.NopCloser(bytes.NewReader(m.tarball)), nil
}

func (m *mockMirrorClient) FetchIndex(_ context.Context, _ domain.RegistryEntry) ([]byte, error) {
	return m.index, m.indexErr
}
