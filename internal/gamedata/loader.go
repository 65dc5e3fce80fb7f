package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadFileInto unmarshals a JSON file from disk over an existing value.
// Fields absent from the file keep their current values, so the embedded
// defaults can be partially overridden.
func LoadFileInto[T any](path string, into *T) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(content, into); err != nil {
		return fmt.Errorf("failed to parse JSON from %s: %w", path, err)
	}
	return nil
}
