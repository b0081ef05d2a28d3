package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/meridian-labs/rolo-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse contacts interactively",
	Long: `Launch an interactive terminal browser for the contact book.

The list refreshes automatically when the contact file changes on disk,
so research runs in another terminal show up immediately.

Controls:
  ↑/k, ↓/j - Navigate contacts
  /        - Filter by name, company, or role
  Esc      - Clear filter
  q        - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if contactService == nil {
		return errors.New("contact service not configured")
	}

	app, err := tui.NewApp(&tui.Ports{Contacts: contactService})
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}
	app.WithContext(cmd.Context())

	// Live reload is best-effort: an in-memory store has no file to watch.
	if path := contactService.StorePath(); path != "" {
		watcher, err := tui.NewStoreWatcher(path)
		if err == nil {
			defer watcher.Close() //nolint:errcheck
			app.WithWatcher(watcher)
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
