// Package mcp implements the Model Context Protocol server for keralam.
//
// The mcp package provides:
// - MCP server implementation for external tool integration
// - The dam_monitor tool for water level queries
// - Resources exposing raw dam data to MCP clients
package mcp
