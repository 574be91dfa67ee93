// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// loadConfig decodes the YAML file at path into a generic value. An empty
// path or an empty document yields nil, which means "all defaults".
func loadConfig(path string) (any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return raw, nil
}

// mergeOverrides lays the flag values over a decoded configuration.
// A non-map configuration is returned untouched so that construction
// reports it as invalid.
func mergeOverrides(raw any, overrides map[string]float64) any {
	if len(overrides) == 0 {
		return raw
	}

	var merged map[string]any
	switch t := raw.(type) {
	case nil:
		merged = make(map[string]any, len(overrides))
	case map[string]any:
		merged = make(map[string]any, len(t)+len(overrides))
		for k, v := range t {
			merged[k] = v
		}
	default:
		return raw
	}
	for k, v := range overrides {
		merged[k] = v
	}

	return merged
}

// readInput decodes a YAML (or JSON) document from path; "-" reads stdin.
func readInput(path string, stdin io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	return v, nil
}
