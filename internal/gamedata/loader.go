package gamedata

import (
	"encoding/json"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// Load reads and unmarshals a data file from the embedded filesystem.
// The decoder is chosen by extension: .json or .yaml/.yml.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	switch ext := path.Ext(filename); ext {
	case ".json":
		if err := json.Unmarshal(content, &result); err != nil {
			return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &result); err != nil {
			return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
		}
	default:
		return result, fmt.Errorf("unsupported data file extension %q for %s", ext, filename)
	}

	return result, nil
}
