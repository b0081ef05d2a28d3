// Package mcp provides an MCP (Model Context Protocol) server adapter for rolo.
// It lets AI assistants read and update the local contact book.
package mcp

import "errors"

// ErrMissingContactService is returned when the contact service is not provided.
var ErrMissingContactService = errors.New("mcp: contact service is required")
