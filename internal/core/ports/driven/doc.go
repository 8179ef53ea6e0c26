// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - IndexCatalog: Loads a docset's filename index
//   - FilenameSearcher: Matches the index against a query
//   - ContentSearcher: Scans page bodies for a query
//   - ResultCache: Persists the last computed result set
//   - DocsetStore: Local docset directories and extraction
//   - RegistryStore: The on-disk docset registry record
//   - MirrorClient: HTTP access to the docset mirror
//   - PageRenderer: Renders a resolved page to the terminal
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
