package config

import (
	"encoding/json"
	"os"

	"github.com/entrelagos/gatelog/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	ExportDir   string `json:"export_dir"`
	Verbose     bool   `json:"verbose"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file
// path comes from the -c or -config flags via flagx.JsonConfigFlags; when
// neither is set, nothing is loaded. Read or unmarshal errors panic, the
// caller owns recovery.
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

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	cfg.Verbose = jc.Verbose
}
