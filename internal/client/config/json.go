package config

import (
	"encoding/json"
	"os"

	"herbtrack/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL  string `json:"api_base_url"`
	Mode        string `json:"mode"`
	LocalDBPath string `json:"local_db_path"`
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.Mode != "" {
		cfg.Mode = Mode(jc.Mode)
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
}
