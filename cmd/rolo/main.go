// Command rolo is a personal networking assistant: a contact book with a
// research pipeline that prepares networking briefs.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	configfile "github.com/meridian-labs/rolo-cli/internal/adapters/driven/config/file"
	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/llm/gemini"
	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/news/newsapi"
	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/news/rss"
	ghprofiler "github.com/meridian-labs/rolo-cli/internal/adapters/driven/research/github"
	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/research/websearch"
	storefile "github.com/meridian-labs/rolo-cli/internal/adapters/driven/storage/file"
	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/storage/sqlite"
	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/web"
	"github.com/meridian-labs/rolo-cli/internal/adapters/driving/cli"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
	"github.com/meridian-labs/rolo-cli/internal/core/services"
	"github.com/meridian-labs/rolo-cli/internal/logger"
)

// version is overridden at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := newContactStore(config)
	if err != nil {
		return fmt.Errorf("opening contact store: %w", err)
	}

	research := services.NewResearchService(store)
	wireResearchProviders(research, config)

	cli.SetContactService(services.NewContactService(store))
	cli.SetResearchService(research)
	cli.SetConfigStore(config)
	cli.SetVersion(version)

	return cli.Execute()
}

// newContactStore opens the configured backend: a JSON file by default,
// or SQLite when store.backend is "sqlite".
func newContactStore(config driven.ConfigStore) (driven.ContactStore, error) {
	path := config.GetString(driven.KeyStorePath)

	switch backend := config.GetString(driven.KeyStoreBackend); backend {
	case "", "json":
		return storefile.NewContactStore(path)
	case "sqlite":
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("getting home directory: %w", err)
			}
			path = filepath.Join(home, ".rolo", "contacts.db")
			if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
				return nil, err
			}
		}
		return sqlite.NewContactStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want json or sqlite)", backend)
	}
}

// wireResearchProviders attaches every research source the configuration
// enables. Missing keys just leave a source disabled.
func wireResearchProviders(research *services.ResearchService, config driven.ConfigStore) {
	if apiKey := config.GetString(driven.KeyGeminiAPIKey); apiKey != "" {
		summariser, err := gemini.New(gemini.Config{
			APIKey: apiKey,
			Model:  config.GetString(driven.KeyGeminiModel),
		})
		if err != nil {
			logger.Warn("gemini disabled: %v", err)
		} else {
			research.SetSummariser(summariser)
		}
	}

	// An explicit feed URL wins over NewsAPI: it needs no key.
	if feedURL := config.GetString(driven.KeyNewsFeedURL); feedURL != "" {
		provider, err := rss.New(feedURL)
		if err != nil {
			logger.Warn("rss news disabled: %v", err)
		} else {
			research.SetNewsProvider(provider)
		}
	} else if apiKey := config.GetString(driven.KeyNewsAPIKey); apiKey != "" {
		provider, err := newsapi.New(newsapi.Config{APIKey: apiKey})
		if err != nil {
			logger.Warn("newsapi disabled: %v", err)
		} else {
			research.SetNewsProvider(provider)
		}
	}

	// GitHub works unauthenticated; a token only raises the rate limit.
	profiler, err := ghprofiler.New(ghprofiler.Config{
		Token: config.GetString(driven.KeyGitHubToken),
	})
	if err != nil {
		logger.Warn("github profiler disabled: %v", err)
	} else {
		research.SetCompanyProfiler(profiler)
	}

	if apiKey := config.GetString(driven.KeySearchAPIKey); apiKey != "" {
		searcher, err := websearch.New(context.Background(), websearch.Config{
			APIKey:   apiKey,
			EngineID: config.GetString(driven.KeySearchEngineID),
		})
		if err != nil {
			logger.Warn("web search disabled: %v", err)
		} else {
			research.SetWebSearcher(searcher)
		}
	}

	research.SetPageExtractor(web.New(web.Config{}))
}
