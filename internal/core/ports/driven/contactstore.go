package driven

import (
	"context"
	"iter"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

// ContactStore is durable keyed storage of Contact records. The collection
// is keyed by contact name and rewritten in full on every mutation; there is
// no caching layer, so each operation observes the backing file as it is.
//
// Implementations:
//   - file: JSON file, the default backend
//   - sqlite: SQLite database for larger contact books
//   - memory: in-memory, for tests and scratch use
type ContactStore interface {
	// Load reads the entire persisted collection, sorted by name.
	// A missing backing file yields an empty collection, not an error.
	// A malformed file fails with an error wrapping domain.ErrCorruptStore.
	Load(ctx context.Context) ([]domain.Contact, error)

	// Save rewrites the whole collection, replacing prior contents.
	// The write is atomic: a failure wraps domain.ErrStoreWrite and leaves
	// the previous version intact.
	Save(ctx context.Context, contacts []domain.Contact) error

	// Upsert inserts a new record or merges fields into the record keyed by
	// name, bumps its UpdatedAt, and persists immediately. It returns a copy
	// of the stored record.
	Upsert(ctx context.Context, name string, fields domain.ContactFields) (domain.Contact, error)

	// Get returns a copy of the record keyed by name, or domain.ErrNotFound.
	Get(ctx context.Context, name string) (*domain.Contact, error)

	// Find returns a lazy sequence of records whose name, company, or role
	// contains the query (case-insensitive), in ascending name order. The
	// sequence is finite and restartable: ranging over it twice yields the
	// same records unless the store changed in between.
	Find(ctx context.Context, query string) (iter.Seq[domain.Contact], error)

	// Remove deletes the record if present and persists immediately.
	// Removing an absent name is a no-op, not an error.
	Remove(ctx context.Context, name string) error

	// Path returns the location of the backing storage, for display.
	Path() string
}
