package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the gatehouse logbook.
//
// Fields:
//   - DatabaseDSN: SQLite data source of the persistent document store.
//   - ExportDir: directory workbook exports are written into.
//   - Verbose: enables debug-level logging.
type Config struct {
	DatabaseDSN string
	ExportDir   string
	Verbose     bool
}

// LoadDefaults populates c with sensible defaults. Data lives under the
// user config dir when resolvable, next to the binary otherwise.
func (c *Config) LoadDefaults() {
	base := "."
	if dir, err := os.UserConfigDir(); err == nil {
		base = filepath.Join(dir, "gatelog")
	}
	c.DatabaseDSN = filepath.Join(base, "gatelog.db")
	c.ExportDir = "."
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
