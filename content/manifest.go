package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the content list a host exports for the generator.
type Manifest struct {
	Items []Item `yaml:"items"`
}

// LoadManifest reads a YAML (or JSON) manifest file.
func LoadManifest(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	for i := range m.Items {
		if m.Items[i].Route == "" {
			return nil, fmt.Errorf("manifest %s: item %d: %w", path, i, ErrMissingRoute)
		}
		m.Items[i].Source = path
	}
	return m.Items, nil
}
