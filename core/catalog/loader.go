package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog document.
type File struct {
	Sections []Entry `yaml:"sections" json:"sections"`
}

// Load reads a catalog file in YAML or JSON format, selected by extension,
// and runs the preflight validation pass over every entry.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", ext)
	}
	if len(f.Sections) == 0 {
		return nil, fmt.Errorf("catalog %s contains no sections", path)
	}
	return Build(f.Sections)
}
