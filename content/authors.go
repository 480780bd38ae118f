package content

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AuthorsFile is the name of the author registry in the blog directory.
const AuthorsFile = "authors.yml"

// Authors maps author keys to their metadata.
type Authors map[string]Author

// LoadAuthors reads authors.yml from dir. A missing file yields an empty map.
func LoadAuthors(dir string) (Authors, error) {
	path := filepath.Join(dir, AuthorsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Authors{}, nil
		}
		return nil, fmt.Errorf("read authors: %w", err)
	}

	authors := Authors{}
	if err := yaml.Unmarshal(data, &authors); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return authors, nil
}

// Resolve returns the author registered under key.
func (a Authors) Resolve(key string) (Author, bool) {
	author, ok := a[key]
	return author, ok
}
