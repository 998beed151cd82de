// Package cli implements the command-line interface for keralam.
//
// The cli package provides:
// - Command-line argument parsing and validation
// - Terminal rendering of dam reports
// - Browser integration for the live dashboard
package cli
