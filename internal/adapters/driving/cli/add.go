package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

var (
	addFields   domain.ContactFields
	addResearch bool
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add or update a contact",
	Long: `Adds a contact to the book, or merges the given fields into an
existing contact with the same name. Fields you leave out keep their
current values.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFields.Role, "role", "", "job title")
	addCmd.Flags().StringVar(&addFields.Company, "company", "", "company name")
	addCmd.Flags().StringVar(&addFields.LinkedIn, "linkedin", "", "LinkedIn profile URL")
	addCmd.Flags().StringVar(&addFields.Website, "website", "", "company or personal website URL")
	addCmd.Flags().StringVar(&addFields.Industry, "industry", "", "industry keyword used for news search")
	addCmd.Flags().BoolVar(&addResearch, "research", false, "run research immediately after saving")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contact, err := contactService.Upsert(cmd.Context(), args[0], addFields)
	if err != nil {
		return fmt.Errorf("add contact: %w", err)
	}

	cmd.Printf("Saved %s\n", contact.Name)
	printContact(cmd, contact)

	if addResearch {
		return runResearch(cmd, []string{contact.Name})
	}
	return nil
}
