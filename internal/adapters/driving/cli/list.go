package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output contacts as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contacts, err := contactService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	if listJSON {
		return outputContactsJSON(cmd, contacts)
	}
	return outputContactsTable(cmd, contacts)
}

func outputContactsJSON(cmd *cobra.Command, contacts []domain.Contact) error {
	data, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputContactsTable(cmd *cobra.Command, contacts []domain.Contact) error {
	if len(contacts) == 0 {
		cmd.Println("No contacts yet. Add one with 'rolo add'.")
		return nil
	}

	for _, c := range contacts {
		line := c.Name
		if c.Role != "" {
			line += " - " + c.Role
		}
		if c.Company != "" {
			line += " @ " + c.Company
		}
		cmd.Println(line)
	}
	cmd.Printf("\n%d contact(s) in %s\n", len(contacts), contactService.StorePath())
	return nil
}
