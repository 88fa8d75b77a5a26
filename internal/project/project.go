// Package project reads optimization requests and writes results to disk.
// Requests may be JSON or YAML (by extension); results are always JSON.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/panelcut/internal/model"
)

// LoadRequest reads a request file. Files ending in .yaml or .yml are parsed
// as YAML, everything else as JSON.
func LoadRequest(path string) (model.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Request{}, err
	}

	var req model.Request
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return model.Request{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &req); err != nil {
			return model.Request{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return req, nil
}

// LoadResult reads a previously saved result file (JSON).
func LoadResult(path string) (model.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Result{}, err
	}
	var result model.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return model.Result{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return result, nil
}

// SaveResult writes the result as indented JSON, creating parent directories
// if they do not exist.
func SaveResult(path string, result model.Result) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveRequest writes a request as indented JSON, creating parent directories
// if they do not exist.
func SaveRequest(path string, req model.Request) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
