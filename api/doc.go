// Package api implements dam monitoring on top of the live feed.
//
// The api package provides:
// - Monitor, the facade used by both the CLI and the MCP server
// - Report formatting for overview, detail, alert, and comparison views
// - Version information for the keralam binary
package api
