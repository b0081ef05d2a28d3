package tui

import (
	"context"
	"iter"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driving"
)

// mockContactService implements driving.ContactService for tests.
type mockContactService struct {
	contacts []domain.Contact
	err      error
}

var _ driving.ContactService = (*mockContactService)(nil)

func (m *mockContactService) Upsert(
	_ context.Context, name string, _ domain.ContactFields,
) (domain.Contact, error) {
	return domain.Contact{Name: name}, m.err
}

func (m *mockContactService) Get(_ context.Context, _ string) (*domain.Contact, error) {
	return nil, domain.ErrNotFound
}

func (m *mockContactService) List(_ context.Context) ([]domain.Contact, error) {
	return m.contacts, m.err
}

func (m *mockContactService) Find(_ context.Context, _ string) (iter.Seq[domain.Contact], error) {
	return slices.Values(m.contacts), m.err
}

func (m *mockContactService) Remove(_ context.Context, _ string) error { return m.err }
func (m *mockContactService) StorePath() string                        { return "mock" }

func testApp(t *testing.T, contacts []domain.Contact) *App {
	t.Helper()
	app, err := NewApp(&Ports{Contacts: &mockContactService{contacts: contacts}})
	require.NoError(t, err)
	return app
}

func loadedApp(t *testing.T, contacts []domain.Contact) *App {
	t.Helper()
	app := testApp(t, contacts)
	model, _ := app.Update(contactsLoaded{Contacts: contacts})
	return model.(*App)
}

func TestNewApp_RequiresContactService(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingContactService)
}

func TestApp_LoadsContacts(t *testing.T) {
	contacts := []domain.Contact{
		{Name: "Amir Khan", Company: "Beta Corp"},
		{Name: "Jane Doe", Company: "Acme", Role: "CTO"},
	}
	app := loadedApp(t, contacts)

	view := app.View()

	assert.Contains(t, view, "Amir Khan @ Beta Corp")
	assert.Contains(t, view, "Jane Doe @ Acme")
	assert.Contains(t, view, "2 shown")
}

func TestApp_Navigation(t *testing.T) {
	contacts := []domain.Contact{
		{Name: "Amir Khan"},
		{Name: "Jane Doe"},
	}
	app := loadedApp(t, contacts)
	assert.Equal(t, 0, app.selected)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	// Bottom of the list clamps.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	app = model.(*App)
	assert.Equal(t, 0, app.selected)
}

func TestApp_Filter(t *testing.T) {
	contacts := []domain.Contact{
		{Name: "Amir Khan", Company: "Beta Corp"},
		{Name: "Jane Doe", Company: "Acme"},
	}
	app := loadedApp(t, contacts)

	// Enter filter mode and type a query.
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	app = model.(*App)
	require.True(t, app.filtering)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("acme")})
	app = model.(*App)
	require.Len(t, app.matched, 1)
	assert.Equal(t, "Jane Doe", app.matched[0].Name)

	// Esc clears the filter.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.False(t, app.filtering)
	assert.Len(t, app.matched, 2)
}

func TestApp_DetailPane(t *testing.T) {
	contacts := []domain.Contact{
		{Name: "Jane Doe", Role: "CTO", Company: "Acme", Summary: "Met at a conference."},
	}
	app := loadedApp(t, contacts)

	view := app.View()

	assert.Contains(t, view, "Role: CTO")
	assert.Contains(t, view, "Met at a conference.")
}

func TestApp_LoadError(t *testing.T) {
	app := testApp(t, nil)

	model, _ := app.Update(contactsLoaded{Err: assert.AnError})
	app = model.(*App)

	assert.Contains(t, app.View(), "Error:")
}

func TestApp_Quit(t *testing.T) {
	app := loadedApp(t, nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
