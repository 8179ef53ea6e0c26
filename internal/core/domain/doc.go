// Package domain defines the core business entities for docdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ExactResult: A match on a page's name or indexed path
//   - VagueResult: A match inside a page's body, with context snippets
//   - SearchOptions: The (query, docset, flags) cache fingerprint
//   - SearchCache: The persisted result payload
//   - RegistryEntry / IndexEntry: Docset registry and filename index records
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
