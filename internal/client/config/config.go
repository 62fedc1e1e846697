// Package config handles configuration for the client component,
// including defaults, JSON overlay, command-line flags, and the
// production environment override.
package config

// Mode selects which base URL the client targets by default.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// EnvAPIBaseURL overrides the API base URL in production deployments.
const EnvAPIBaseURL = "HERBTRACK_API_URL"

// Config holds runtime settings for the herbtrack CLI.
//
// Fields:
//   - APIBaseURL: base URL of the tracking service, including the /api/v1 prefix.
//   - Mode: development or production; selects the default base URL.
//   - LocalDBPath: path of the local SQLite file holding the persisted session.
type Config struct {
	APIBaseURL  string
	Mode        Mode
	LocalDBPath string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.Mode = ModeDevelopment
	c.APIBaseURL = "http://localhost:8000/api/v1"
	c.LocalDBPath = "herbtrack.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), command-line flags, and finally the environment. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	applyMode(cfg)
	return cfg
}
