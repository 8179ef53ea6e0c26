package domain

// RegistryEntry describes one docset available on the mirror.
// The registry is the `docs.json` record fetched by the fetch command.
type RegistryEntry struct {
	// Name is the human-readable docset name, e.g. "Rust".
	Name string `json:"name"`

	// Slug identifies the docset on the mirror, e.g. "rust".
	Slug string `json:"slug"`

	// Mtime is the mirror-side modification stamp, used as a cache
	// buster on download links.
	Mtime int64 `json:"mtime"`

	// Size is the docset database size in bytes, for listing.
	Size int64 `json:"db_size"`
}

// IndexEntry is one record of a docset's filename index.
type IndexEntry struct {
	// Name is the display name of the indexed page or section.
	Name string `json:"name"`

	// Path locates the page, optionally carrying a '#' anchor.
	Path string `json:"path"`
}

// Index is the filename manifest shipped inside a downloaded docset.
type Index struct {
	Entries []IndexEntry `json:"entries"`
}
