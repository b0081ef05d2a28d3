package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search contacts",
	Long: `Searches contact names, companies, and roles for a case-insensitive
substring match.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	matches, err := contactService.Find(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search contacts: %w", err)
	}

	count := 0
	for c := range matches {
		line := c.Name
		if c.Role != "" {
			line += " - " + c.Role
		}
		if c.Company != "" {
			line += " @ " + c.Company
		}
		cmd.Println(line)
		count++
	}

	if count == 0 {
		cmd.Println("No matching contacts.")
	}
	return nil
}
