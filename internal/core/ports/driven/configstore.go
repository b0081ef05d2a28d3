package driven

// Well-known configuration keys.
const (
	// KeyStoreBackend selects the contact store backend: "json" or "sqlite".
	KeyStoreBackend = "store.backend"

	// KeyStorePath overrides the contact store location.
	KeyStorePath = "store.path"

	// KeyGeminiAPIKey is the Gemini API key for brief generation.
	KeyGeminiAPIKey = "gemini.api_key"

	// KeyGeminiModel overrides the Gemini model name.
	KeyGeminiModel = "gemini.model"

	// KeyNewsAPIKey is the NewsAPI key.
	KeyNewsAPIKey = "news.api_key"

	// KeyNewsFeedURL is an RSS feed URL used instead of NewsAPI when set.
	KeyNewsFeedURL = "news.feed_url"

	// KeyGitHubToken is an optional GitHub token for the company profiler.
	KeyGitHubToken = "github.token"

	// KeySearchAPIKey is the Google Custom Search API key.
	KeySearchAPIKey = "search.api_key"

	// KeySearchEngineID is the Custom Search engine ID (cx).
	KeySearchEngineID = "search.engine_id"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value. The value is persisted immediately.
	Set(key string, value any) error

	// Keys returns all configured keys in sorted order.
	Keys() []string

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
