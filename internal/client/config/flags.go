package config

import (
	"flag"
	"os"

	"herbtrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the tracking service
//	-m string   mode: development or production
//	-d string   path of the local session database
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the tracking service")
	mode := fs.String("m", string(cfg.Mode), "mode: development or production")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Mode = Mode(*mode)
}

// applyMode resolves the production environment override: in production the
// HERBTRACK_API_URL variable, when set, wins over every other source.
func applyMode(cfg *Config) {
	if cfg.Mode != ModeProduction {
		return
	}
	if url := os.Getenv(EnvAPIBaseURL); url != "" {
		cfg.APIBaseURL = url
	}
}
