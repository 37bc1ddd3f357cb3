// Package main provides the entry point for the diagnostics CLI.
//
// The CLI records application logs and settings in a local store and turns
// them, together with app and system metadata, into a single HTML
// diagnostics report that users can attach to a support request.
//
// Usage:
//
//	diagnostics generate -o ./out
//	diagnostics log add --level warn "upload retried" attempt=2
//	diagnostics settings set theme dark
//
// See --help for all available options.
package main

// main is the entry point for the diagnostics CLI.
func main() {
	Execute()
}
