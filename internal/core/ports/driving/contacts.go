package driving

import (
	"context"
	"iter"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

// ContactService manages the contact book.
type ContactService interface {
	// Upsert inserts or merges a contact keyed by name and returns the
	// stored record.
	Upsert(ctx context.Context, name string, fields domain.ContactFields) (domain.Contact, error)

	// Get retrieves a contact by name, or domain.ErrNotFound.
	Get(ctx context.Context, name string) (*domain.Contact, error)

	// List returns all contacts in ascending name order.
	List(ctx context.Context) ([]domain.Contact, error)

	// Find lazily yields contacts matching the query (case-insensitive
	// substring over name, company, and role) in ascending name order.
	Find(ctx context.Context, query string) (iter.Seq[domain.Contact], error)

	// Remove deletes a contact by name. Absent names are a no-op.
	Remove(ctx context.Context, name string) error

	// StorePath reports where the contact book lives, for display.
	StorePath() string
}
