package config

// Config is the root application configuration, loaded from the environment.
// A .env file in the working directory is honoured when present.
type Config struct {
	// DatabaseURL is the SQLite DSN or file path. When unset the app falls
	// back to a local file next to the binary.
	DatabaseURL string `env:"DATABASE_URL" env-default:"bookclub.db"`

	// SecretKey signs the flash-notice cookie and the CSRF token.
	SecretKey string `env:"SECRET_KEY" env-default:"dev-secret-key"`

	// Notion integration (note mirror). Both must be set for mirroring.
	NotionToken      string `env:"NOTION_TOKEN"`
	NotionDatabaseID string `env:"NOTION_DATABASE_ID"`

	// Google Books enrichment.
	GoogleBooksAPIKey string `env:"GOOGLE_BOOKS_API_KEY"`

	// OpenAI text generation for discussion keywords.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`

	// Optional organizer notification after a successful mirror.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	NotifyEmail  string `env:"BOOKCLUB_NOTIFY_EMAIL"`
	NotifyFrom   string `env:"BOOKCLUB_NOTIFY_FROM" env-default:"독서모임 <noreply@bookclub.local>"`

	Port string `env:"PORT" env-default:"8000"`

	// Env selects runtime behaviour: "production" hardens cookies and
	// requires a real SecretKey; anything else is treated as development.
	Env string `env:"BOOKCLUB_ENV" env-default:"development"`
}

// IsProduction reports whether the app runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// NotionConfigured reports whether both Notion credentials are present.
func (c *Config) NotionConfigured() bool {
	return c.NotionToken != "" && c.NotionDatabaseID != ""
}
