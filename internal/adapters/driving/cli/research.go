package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

var researchCmd = &cobra.Command{
	Use:   "research [name]",
	Short: "Research a contact and write a networking brief",
	Long: `Gathers background about the contact's company - website content,
recent news, public GitHub presence, web search results - and condenses it
into a brief saved onto the contact.

Sources are configured with 'rolo config set-key'; unconfigured or failing
sources are skipped. Without an AI key the brief falls back to raw notes.`,
	Args: cobra.ExactArgs(1),
	RunE: runResearch,
}

func init() {
	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	if researchService == nil {
		return errors.New("research service not configured")
	}

	cmd.Printf("Researching %s...\n", args[0])

	brief, err := researchService.Research(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no contact named %q - add them first with 'rolo add'", args[0])
		}
		return fmt.Errorf("research failed: %w", err)
	}

	cmd.Println()
	cmd.Println(brief.Summary)
	if len(brief.NewsLinks) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, link := range brief.NewsLinks {
			cmd.Printf("  %s\n", link)
		}
	}

	cmd.Println()
	if brief.Generated {
		cmd.Printf("Brief saved (sources: %s)\n", strings.Join(brief.Sources, ", "))
	} else {
		cmd.Println("Brief saved (manual notes - configure an AI key for generated briefs)")
	}
	return nil
}
