package docsets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
)

// RegistryName is the registry record inside the program directory.
const RegistryName = "docs.json"

// Ensure Registry implements the interface.
var _ driven.RegistryStore = (*Registry)(nil)

// Registry persists the fetched docset registry as a JSON record in
// the program directory.
type Registry struct {
	dir string
}

// NewRegistry creates a registry store rooted at programDir.
func NewRegistry(programDir string) *Registry {
	return &Registry{dir: programDir}
}

func (r *Registry) path() string {
	return filepath.Join(r.dir, RegistryName)
}

// Load reads the stored registry. domain.ErrNotFetched signals that
// fetch has never run; an unparsable record is a format error.
func (r *Registry) Load() ([]domain.RegistryEntry, error) {
	data, err := os.ReadFile(r.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: run `fetch` first", domain.ErrNotFetched)
		}
		return nil, fmt.Errorf("read `%s`: %w", r.path(), err)
	}

	var entries []domain.RegistryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse `%s`: %v", domain.ErrFormat, r.path(), err)
	}
	return entries, nil
}

// Save overwrites the stored registry.
func (r *Registry) Save(entries []domain.RegistryEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	if err := os.WriteFile(r.path(), data, 0644); err != nil {
		return fmt.Errorf("write `%s`: %w", r.path(), err)
	}
	return nil
}

// ModTime returns when the registry was last saved.
func (r *Registry) ModTime() (time.Time, error) {
	info, err := os.Stat(r.path())
	if os.IsNotExist(err) {
		return time.Time{}, fmt.Errorf("%w: run `fetch` first", domain.ErrNotFetched)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("stat `%s`: %w", r.path(), err)
	}
	return info.ModTime(), nil
}
