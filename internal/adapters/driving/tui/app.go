package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

// contactsLoaded carries a fresh snapshot of the contact book.
type contactsLoaded struct {
	Contacts []domain.Contact
	Err      error
}

// storeChanged signals that the contact file was modified outside the TUI.
type storeChanged struct{}

// App is the contact browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports   *Ports
	ctx     context.Context
	styles  *Styles
	keys    *KeyMap
	watcher *StoreWatcher

	filter    textinput.Model
	filtering bool

	contacts []domain.Contact
	matched  []domain.Contact
	selected int

	width  int
	height int
	err    error
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new contact browser with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	filter := textinput.New()
	filter.Placeholder = "name, company, or role"
	filter.CharLimit = 128
	filter.Width = 40

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
		filter: filter,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithWatcher attaches a store watcher so external edits to the contact
// file refresh the list.
func (a *App) WithWatcher(w *StoreWatcher) *App {
	a.watcher = w
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("rolo - Contacts"),
		a.loadContacts(),
	}
	if a.watcher != nil {
		cmds = append(cmds, a.waitForChange())
	}
	return tea.Batch(cmds...)
}

// loadContacts returns a command that reloads the contact list.
func (a *App) loadContacts() tea.Cmd {
	return func() tea.Msg {
		contacts, err := a.ports.Contacts.List(a.ctx)
		return contactsLoaded{Contacts: contacts, Err: err}
	}
}

// waitForChange blocks on the watcher until the store file changes.
func (a *App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-a.watcher.Changes(); !ok {
			return nil
		}
		return storeChanged{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case contactsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.contacts = msg.Contacts
		a.applyFilter()
		return a, nil

	case storeChanged:
		return a, tea.Batch(a.loadContacts(), a.waitForChange())

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			a.filtering = false
			a.filter.Blur()
			a.filter.SetValue("")
			a.applyFilter()
			return a, nil
		case tea.KeyEnter:
			a.filtering = false
			a.filter.Blur()
			return a, nil
		default:
			var cmd tea.Cmd
			a.filter, cmd = a.filter.Update(msg)
			a.applyFilter()
			return a, cmd
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.selected > 0 {
			a.selected--
		}
	case key.Matches(msg, a.keys.Down):
		if a.selected < len(a.matched)-1 {
			a.selected++
		}
	case key.Matches(msg, a.keys.Filter):
		a.filtering = true
		return a, a.filter.Focus()
	case key.Matches(msg, a.keys.Cancel):
		a.filter.SetValue("")
		a.applyFilter()
	}
	return a, nil
}

// applyFilter recomputes the visible rows and clamps the selection.
func (a *App) applyFilter() {
	query := a.filter.Value()
	a.matched = a.matched[:0]
	for _, c := range a.contacts {
		if c.Matches(query) {
			a.matched = append(a.matched, c)
		}
	}
	if a.selected >= len(a.matched) {
		a.selected = len(a.matched) - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Contacts"))
	b.WriteString("  ")
	b.WriteString(a.styles.Muted.Render(fmt.Sprintf("%d shown", len(a.matched))))
	b.WriteString("\n")

	if a.filtering || a.filter.Value() != "" {
		b.WriteString("Filter: " + a.filter.View() + "\n")
	}
	b.WriteString("\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: "+a.err.Error()) + "\n")
		return b.String()
	}

	if len(a.matched) == 0 {
		b.WriteString(a.styles.Muted.Render("No contacts. Add one with 'rolo add'.") + "\n")
	}

	list := a.renderList()
	detail := a.renderDetail()
	if detail != "" {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	} else {
		b.WriteString(list)
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("↑/k up · ↓/j down · / filter · q quit"))
	return b.String()
}

func (a *App) renderList() string {
	var rows []string
	for i, c := range a.matched {
		row := c.Name
		if c.Company != "" {
			row += " @ " + c.Company
		}
		if i == a.selected {
			rows = append(rows, a.styles.Selected.Render("> "+row))
		} else {
			rows = append(rows, a.styles.Normal.Render("  "+row))
		}
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderDetail() string {
	if a.selected < 0 || a.selected >= len(a.matched) {
		return ""
	}
	c := a.matched[a.selected]

	var b strings.Builder
	b.WriteString(a.styles.Title.Render(c.Name) + "\n")
	for _, f := range []struct{ label, value string }{
		{"Role", c.Role},
		{"Company", c.Company},
		{"Industry", c.Industry},
		{"LinkedIn", c.LinkedIn},
		{"Website", c.Website},
	} {
		if f.value != "" {
			b.WriteString(fmt.Sprintf("%s: %s\n", f.label, f.value))
		}
	}
	if c.Summary != "" {
		b.WriteString("\n" + truncate(c.Summary, 400) + "\n")
	}
	return a.styles.Detail.Render(strings.TrimSuffix(b.String(), "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
