// Package index loads docset filename indexes from their manifest files.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
)

// ManifestName is the filename index record shipped inside a docset.
const ManifestName = "index.json"

// Ensure Catalog implements the interface.
var _ driven.IndexCatalog = (*Catalog)(nil)

// Catalog reads a docset's filename index from its manifest file.
// A pure read with no side effects.
type Catalog struct{}

// NewCatalog creates a new manifest-backed catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Load reads and parses the manifest inside docsetPath.
//
// A missing manifest means the docset was produced by an older builder
// and reports domain.ErrIncompatibleDocset; a manifest that does not
// parse reports domain.ErrFormat. Both errors name the offending path.
func (c *Catalog) Load(docsetPath string) (domain.Index, error) {
	manifestPath := filepath.Join(docsetPath, ManifestName)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Index{}, fmt.Errorf("%w: `%s` is missing, re-download the docset",
				domain.ErrIncompatibleDocset, manifestPath)
		}
		return domain.Index{}, fmt.Errorf("read `%s`: %w", manifestPath, err)
	}

	var idx domain.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return domain.Index{}, fmt.Errorf("%w: parse `%s`: %v", domain.ErrFormat, manifestPath, err)
	}

	return idx, nil
}
