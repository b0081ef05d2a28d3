// Package memory provides an in-memory contact store for tests and
// scratch sessions. It honours the same semantics as the file store but
// nothing survives the process.
package memory

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

// Ensure ContactStore implements the interface.
var _ driven.ContactStore = (*ContactStore)(nil)

// ContactStore is an in-memory implementation of driven.ContactStore.
type ContactStore struct {
	mu       sync.RWMutex
	contacts map[string]domain.Contact
}

// NewContactStore creates a new in-memory contact store.
func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make(map[string]domain.Contact),
	}
}

// Load returns all contacts sorted by name.
func (s *ContactStore) Load(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(), nil
}

// snapshot copies the collection in name order (caller must hold lock).
func (s *ContactStore) snapshot() []domain.Contact {
	contacts := make([]domain.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		contacts = append(contacts, c.Clone())
	}
	domain.SortContacts(contacts)
	return contacts
}

// Save replaces the collection.
func (s *ContactStore) Save(_ context.Context, contacts []domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replacement := make(map[string]domain.Contact, len(contacts))
	for _, c := range contacts {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("contact without a name: %w", err)
		}
		replacement[c.Name] = c.Clone()
	}
	s.contacts = replacement
	return nil
}

// Upsert inserts or merges a contact keyed by name.
func (s *ContactStore) Upsert(_ context.Context, name string, fields domain.ContactFields) (domain.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Contact{}, fmt.Errorf("upsert: %w: name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	c, ok := s.contacts[name]
	if !ok {
		c = domain.Contact{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
		}
	}
	c.Apply(fields)
	c.UpdatedAt = now
	s.contacts[name] = c
	return c.Clone(), nil
}

// Get returns a copy of the contact keyed by name.
func (s *ContactStore) Get(_ context.Context, name string) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contacts[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := c.Clone()
	return &clone, nil
}

// Find returns a lazy sequence of matching contacts in name order.
func (s *ContactStore) Find(_ context.Context, query string) (iter.Seq[domain.Contact], error) {
	s.mu.RLock()
	contacts := s.snapshot()
	s.mu.RUnlock()

	return func(yield func(domain.Contact) bool) {
		for _, c := range contacts {
			if !c.Matches(query) {
				continue
			}
			if !yield(c.Clone()) {
				return
			}
		}
	}, nil
}

// Remove deletes the contact if present.
func (s *ContactStore) Remove(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contacts, name)
	return nil
}

// Path identifies the backend for display.
func (s *ContactStore) Path() string {
	return "memory"
}
