package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove [name]",
	Aliases: []string{"rm"},
	Short:   "Remove a contact",
	Long:    `Removes a contact from the book. Removing an unknown name is not an error.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	if err := contactService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("remove contact: %w", err)
	}

	cmd.Printf("Removed %s\n", args[0])
	return nil
}
