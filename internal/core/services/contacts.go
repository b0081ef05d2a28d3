package services

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driving"
	"github.com/meridian-labs/rolo-cli/internal/logger"
)

// Ensure ContactService implements the interface.
var _ driving.ContactService = (*ContactService)(nil)

// ContactService manages the contact book on top of a ContactStore.
type ContactService struct {
	store driven.ContactStore
}

// NewContactService creates a new contact service.
func NewContactService(store driven.ContactStore) *ContactService {
	return &ContactService{store: store}
}

// Upsert inserts or merges a contact keyed by name.
func (s *ContactService) Upsert(
	ctx context.Context, name string, fields domain.ContactFields,
) (domain.Contact, error) {
	if s.store == nil {
		return domain.Contact{}, domain.ErrNotImplemented
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Contact{}, fmt.Errorf("upsert contact: %w: name is required", domain.ErrInvalidInput)
	}
	logger.Debug("Upserting contact %q", name)
	return s.store.Upsert(ctx, name, fields)
}

// Get retrieves a contact by name.
func (s *ContactService) Get(ctx context.Context, name string) (*domain.Contact, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("get contact: %w: name is required", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, name)
}

// List returns all contacts in ascending name order.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Load(ctx)
}

// Find lazily yields contacts matching the query.
func (s *ContactService) Find(ctx context.Context, query string) (iter.Seq[domain.Contact], error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	logger.Debug("Searching contacts for %q", query)
	return s.store.Find(ctx, query)
}

// Remove deletes a contact by name. Absent names are a no-op.
func (s *ContactService) Remove(ctx context.Context, name string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("remove contact: %w: name is required", domain.ErrInvalidInput)
	}
	logger.Debug("Removing contact %q", name)
	return s.store.Remove(ctx, name)
}

// StorePath reports where the contact book lives.
func (s *ContactService) StorePath() string {
	if s.store == nil {
		return ""
	}
	return s.store.Path()
}
