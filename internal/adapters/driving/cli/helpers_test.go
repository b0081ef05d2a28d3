package cli

import (
	"context"

	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/storage/memory"
	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driving"
	"github.com/meridian-labs/rolo-cli/internal/core/services"
)

// stubResearchService returns a canned brief without touching the network.
type stubResearchService struct {
	brief *domain.Brief
	err   error
}

var _ driving.ResearchService = (*stubResearchService)(nil)

func (s *stubResearchService) Research(_ context.Context, name string) (*domain.Brief, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.brief != nil {
		return s.brief, nil
	}
	return &domain.Brief{ContactName: name, Summary: "stub brief", Generated: true}, nil
}

// setupTestServices swaps in a contact service backed by an in-memory store
// plus a stub research service, and returns a cleanup func restoring the
// previous services.
func setupTestServices() func() {
	prevContacts := contactService
	prevResearch := researchService

	store := memory.NewContactStore()
	contactService = services.NewContactService(store)
	researchService = &stubResearchService{}

	return func() {
		contactService = prevContacts
		researchService = prevResearch
	}
}

// seedContact adds a contact through the injected service.
func seedContact(name string, fields domain.ContactFields) error {
	_, err := contactService.Upsert(context.Background(), name, fields)
	return err
}
