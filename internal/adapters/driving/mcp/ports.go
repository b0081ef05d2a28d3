package mcp

import (
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Contacts manages the contact book.
	Contacts driving.ContactService

	// Research runs the research pipeline. Optional: when nil the
	// research tool is not registered.
	Research driving.ResearchService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Contacts == nil {
		return ErrMissingContactService
	}
	return nil
}
