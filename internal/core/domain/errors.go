package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFetched indicates the docset registry has not been
	// downloaded yet. The user must run `fetch` first.
	ErrNotFetched = errors.New("docset registry not fetched")

	// ErrRegistryFresh indicates the registry is recent enough that
	// fetch refuses to re-download it without --force.
	ErrRegistryFresh = errors.New("docset registry is up to date")

	// ErrDocsetNotFound indicates the named docset does not exist in
	// the registry.
	ErrDocsetNotFound = errors.New("docset not found in registry")

	// ErrNotDownloaded indicates the docset exists in the registry but
	// has not been downloaded locally.
	ErrNotDownloaded = errors.New("docset not downloaded")

	// ErrAlreadyDownloaded indicates the docset is already present and
	// downloading again requires --force.
	ErrAlreadyDownloaded = errors.New("docset already downloaded")

	// ErrIncompatibleDocset indicates the docset directory carries no
	// filename index. Docsets produced by older builders lack one and
	// must be re-downloaded.
	ErrIncompatibleDocset = errors.New("docset has no filename index")

	// ErrFormat indicates a registry, index or cache record did not
	// parse into the expected shape.
	ErrFormat = errors.New("malformed record")

	// ErrPageNotFound indicates the addressed page file does not exist
	// inside the docset.
	ErrPageNotFound = errors.New("page not found")
)
