package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full service configuration: where the catalog lives, the
// theory/lab pairing table, the preference table, the scoring weights and the
// logging identity.
type Config struct {
	CatalogPath string              `json:"catalog_path"`
	Pairings    map[string]string   `json:"pairings"`
	Preferences map[string][]string `json:"preferences"`
	Scoring     ScoringConfig       `json:"scoring"`
	Logging     LoggingConfig       `json:"logging"`
}

// LoggingConfig names the component attached to every log line.
type LoggingConfig struct {
	Component string `json:"component"`
}

// SetDefaults applies the default component name.
func (c *LoggingConfig) SetDefaults() {
	if c.Component == "" {
		c.Component = "batsched"
	}
}

// Load reads a YAML or JSON configuration file, applies BS_-prefixed
// environment overrides, fills defaults and validates every section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("BS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "bs_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Scoring.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Scoring.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog_path is required")
	}
	for theory, lab := range c.Pairings {
		if theory == "" || lab == "" {
			return fmt.Errorf("pairing with empty course code")
		}
	}
	return nil
}
