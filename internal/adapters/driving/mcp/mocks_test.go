package mcp

import (
	"context"
	"iter"
	"slices"
	"strings"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driving"
)

// mockContactService implements driving.ContactService for tests.
type mockContactService struct {
	contacts []domain.Contact
	err      error
	upserted []string
}

var _ driving.ContactService = (*mockContactService)(nil)

func (m *mockContactService) Upsert(
	_ context.Context, name string, fields domain.ContactFields,
) (domain.Contact, error) {
	if m.err != nil {
		return domain.Contact{}, m.err
	}
	m.upserted = append(m.upserted, name)
	c := domain.Contact{Name: name}
	c.Apply(fields)
	return c, nil
}

func (m *mockContactService) Get(_ context.Context, name string) (*domain.Contact, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.contacts {
		if strings.EqualFold(m.contacts[i].Name, name) {
			return &m.contacts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockContactService) List(_ context.Context) ([]domain.Contact, error) {
	return m.contacts, m.err
}

func (m *mockContactService) Find(_ context.Context, query string) (iter.Seq[domain.Contact], error) {
	if m.err != nil {
		return nil, m.err
	}
	matches := []domain.Contact{}
	for _, c := range m.contacts {
		if c.Matches(query) {
			matches = append(matches, c)
		}
	}
	return slices.Values(matches), nil
}

func (m *mockContactService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockContactService) StorePath() string { return "mock" }

// mockResearchService implements driving.ResearchService for tests.
type mockResearchService struct {
	brief *domain.Brief
	err   error
}

var _ driving.ResearchService = (*mockResearchService)(nil)

func (m *mockResearchService) Research(_ context.Context, name string) (*domain.Brief, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.brief != nil {
		return m.brief, nil
	}
	return &domain.Brief{ContactName: name, Summary: "brief"}, nil
}
