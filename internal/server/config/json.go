package config

import (
	"encoding/json"
	"os"
	"time"

	"herbtrack/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Token
// validity is given in seconds.
type JsonConfig struct {
	BindAddr                   string `json:"bind_addr"`
	DatabaseDSN                string `json:"database_dsn"`
	SecretKey                  string `json:"secret_key"`
	AccessTokenValiditySeconds int    `json:"access_token_validity_seconds"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c or -config flags. If no file is named, nothing happens. Read or
// unmarshal errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BindAddr != "" {
		cfg.BindAddr = jc.BindAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.AccessTokenValiditySeconds > 0 {
		cfg.AccessTokenValidityDuration = time.Duration(jc.AccessTokenValiditySeconds) * time.Second
	}
}
