// Package cli implements the command-line interface using cobra.
// Commands are thin adapters: they parse flags, call the injected
// services, and render the results.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driving"
	"github.com/meridian-labs/rolo-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	contactService  driving.ContactService
	researchService driving.ResearchService
	configStore     driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "rolo",
	Short: "A personal networking assistant",
	Long: `Rolo keeps a contact book on disk and researches the people in it.

Add contacts with their role, company, and website, then run 'rolo research'
to gather recent news and company background and produce a networking brief
before your next conversation.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// SetContactService injects the contact service.
func SetContactService(s driving.ContactService) {
	contactService = s
}

// SetResearchService injects the research service.
func SetResearchService(s driving.ResearchService) {
	researchService = s
}

// SetConfigStore injects the configuration store.
func SetConfigStore(s driven.ConfigStore) {
	configStore = s
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
