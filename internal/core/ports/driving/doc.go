// Package driving provides interfaces for application entry points
// (primary/inbound ports). The CLI, TUI, and MCP server drive the core
// through these.
package driving
