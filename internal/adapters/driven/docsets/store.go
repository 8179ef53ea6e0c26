// Package docsets manages locally materialised docsets: the on-disk
// directory layout, tarball extraction, the fetched registry record
// and the HTTP client that talks to the mirror.
package docsets

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/custodia-labs/docdex-cli/internal/adapters/driven/index"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docdex-cli/internal/logger"
)

// DocsetsDirName is the subdirectory of the program dir holding docsets.
const DocsetsDirName = "docsets"

// Ensure Store implements the interface.
var _ driven.DocsetStore = (*Store)(nil)

// Store lays docsets out as one directory per docset under the
// program directory.
type Store struct {
	root string
}

// NewStore creates a docset store under programDir.
func NewStore(programDir string) *Store {
	return &Store{root: filepath.Join(programDir, DocsetsDirName)}
}

// Path resolves a docset name to its directory. The name must be a
// bare identifier, not a path.
func (s *Store) Path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid docset name `%s`", name)
	}
	return filepath.Join(s.root, name), nil
}

// IsDownloaded reports whether the docset directory exists.
func (s *Store) IsDownloaded(name string) (bool, error) {
	path, err := s.Path(name)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat `%s`: %w", path, err)
	}
	return info.IsDir(), nil
}

// ListLocal returns the names of downloaded docsets, sorted.
func (s *Store) ListLocal() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read directory `%s`: %w", s.root, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes the docset directory.
func (s *Store) Remove(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove `%s`: %w", path, err)
	}
	return nil
}

// Extract unpacks a gzip-compressed tarball of rendered pages into the
// docset directory. Entry paths are sanitised so a crafted archive
// cannot escape the docset root.
func (s *Store) Extract(name string, tarball io.Reader) error {
	root, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("create `%s`: %w", root, err)
	}

	gz, err := gzip.NewReader(tarball)
	if err != nil {
		return fmt.Errorf("decompress docset `%s`: %w", name, err)
	}
	defer gz.Close()

	var files int
	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("unpack docset `%s`: %w", name, err)
		}

		dest, err := securePath(root, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dest, 0755); err != nil {
				return fmt.Errorf("create `%s`: %w", dest, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return fmt.Errorf("create `%s`: %w", filepath.Dir(dest), err)
			}
			if err := writeFileFrom(dest, tr); err != nil {
				return err
			}
			files++
		default:
			// Links and special files have no business in a docset.
			continue
		}
	}

	logger.Info("extracted %d pages into `%s`", files, root)
	return nil
}

// WriteIndex places the filename index record inside the docset dir.
func (s *Store) WriteIndex(name string, data []byte) error {
	root, err := s.Path(name)
	if err != nil {
		return err
	}
	path := filepath.Join(root, index.ManifestName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write `%s`: %w", path, err)
	}
	return nil
}

// securePath joins an archive entry name onto root, rejecting any
// entry that resolves outside of it.
func securePath(root, name string) (string, error) {
	dest := filepath.Join(root, filepath.FromSlash(name))
	if dest != root && !strings.HasPrefix(dest, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry `%s` escapes the docset directory", name)
	}
	return dest, nil
}

func writeFileFrom(dest string, r io.Reader) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create `%s`: %w", dest, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write `%s`: %w", dest, err)
	}
	return f.Close()
}
