// Package file implements file-based configuration for docdex.
//
// Settings live in a TOML file inside the program directory, which
// also hosts the docset registry, the downloaded docsets and the
// search result cache.
package file
