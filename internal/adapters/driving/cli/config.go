package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

// secretKeys hide their values in 'config show' and are entered without
// terminal echo by 'config set-key'.
var secretKeys = []string{
	driven.KeyGeminiAPIKey,
	driven.KeyNewsAPIKey,
	driven.KeyGitHubToken,
	driven.KeySearchAPIKey,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration: the store backend and location,
and the API keys used by research.

Known keys:
  store.backend     contact store backend: json (default) or sqlite
  store.path        contact store location
  gemini.api_key    Gemini API key for brief generation
  gemini.model      Gemini model name
  news.api_key      NewsAPI key
  news.feed_url     RSS feed URL, used instead of NewsAPI when set
  github.token      GitHub token for the company profiler (optional)
  search.api_key    Google Custom Search API key
  search.engine_id  Custom Search engine ID`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Set a secret value without echoing it",
	Long: `Prompts for the value with terminal echo disabled, so API keys
never end up in shell history.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := configStore.Keys()
	if len(keys) == 0 {
		cmd.Println("No configuration set.")
		cmd.Printf("Config file: %s\n", configStore.Path())
		return nil
	}

	for _, key := range keys {
		value, _ := configStore.Get(key)
		if slices.Contains(secretKeys, key) {
			value = redact(fmt.Sprint(value))
		}
		cmd.Printf("%-18s %v\n", key, value)
	}
	cmd.Printf("\nConfig file: %s\n", configStore.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	cmd.Printf("Value for %s: ", key)
	value := readPassword()
	cmd.Println()
	if value == "" {
		return errors.New("empty value, nothing saved")
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

// redact keeps a short prefix so users can tell keys apart.
func redact(value string) string {
	if len(value) <= 4 {
		return "****"
	}
	return value[:4] + strings.Repeat("*", 4)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
