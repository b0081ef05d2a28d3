package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a contact's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contact, err := contactService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no contact named %q", args[0])
		}
		return fmt.Errorf("show contact: %w", err)
	}

	cmd.Println(contact.Name)
	printContact(cmd, *contact)
	if contact.Summary != "" {
		cmd.Println()
		cmd.Println(contact.Summary)
	}
	if len(contact.NewsLinks) > 0 {
		cmd.Println()
		cmd.Println("Recent news:")
		for _, link := range contact.NewsLinks {
			cmd.Printf("  %s\n", link)
		}
	}
	return nil
}

// printContact renders the non-empty fields, one per line.
func printContact(cmd *cobra.Command, c domain.Contact) {
	fields := []struct {
		label string
		value string
	}{
		{"Role", c.Role},
		{"Company", c.Company},
		{"Industry", c.Industry},
		{"LinkedIn", c.LinkedIn},
		{"Website", c.Website},
	}
	for _, f := range fields {
		if f.value != "" {
			cmd.Printf("  %-9s %s\n", f.label+":", f.value)
		}
	}
	if !c.UpdatedAt.IsZero() {
		cmd.Printf("  %-9s %s\n", "Updated:", c.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
