// Package driving defines the interfaces through which external actors
// (the CLI) drive the core.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
