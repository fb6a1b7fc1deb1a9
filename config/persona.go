package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// loadPersona reads the persona file and resolves the active key. A
// persona value may be a single string or a list of strings joined with
// spaces. Startup depends on this succeeding.
func loadPersona(file, active string) (string, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}

	var personas map[string]json.RawMessage
	if err := json.Unmarshal(raw, &personas); err != nil {
		return "", fmt.Errorf("parse %s: %w", file, err)
	}

	value, ok := personas[active]
	if !ok {
		return "", fmt.Errorf("persona %q not found in %s", active, file)
	}

	var single string
	if err := json.Unmarshal(value, &single); err == nil {
		return single, nil
	}

	var parts []string
	if err := json.Unmarshal(value, &parts); err != nil {
		return "", fmt.Errorf("persona %q must be a string or list of strings", active)
	}
	return strings.Join(parts, " "), nil
}
