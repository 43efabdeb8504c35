// Package config loads raw product record files. A record file is a single
// YAML or JSON document containing one loosely-keyed product mapping; key
// normalization is the pipeline's job, not the loader's.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRecordFile reads one product record file into a raw mapping. The format
// is chosen by file extension: .json parses as JSON, anything else as YAML.
func LoadRecordFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var raw map[string]any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON record %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML record %s: %w", path, err)
		}
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("record file %s contains no fields", path)
	}

	return raw, nil
}
