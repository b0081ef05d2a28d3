// Package tui provides an interactive terminal contact browser.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/meridian-labs/rolo-cli/internal/core/ports/driving"
)

// ErrMissingContactService is returned when the contact service is not provided.
var ErrMissingContactService = errors.New("tui: contact service is required")

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Contacts manages the contact book.
	Contacts driving.ContactService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Contacts == nil {
		return ErrMissingContactService
	}
	return nil
}
