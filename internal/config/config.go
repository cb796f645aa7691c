// Package config loads the server configuration file. Values are set once at
// process start and immutable afterwards; flags may override individual
// fields before the server is built.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/geoseis/surveymap/internal/survey"
	"github.com/geoseis/surveymap/internal/units"
)

// DefaultConfigPath is where the server looks for its configuration when no
// -config flag is given.
const DefaultConfigPath = "config/surveymap.json"

// ServerConfig is the on-disk configuration schema.
type ServerConfig struct {
	// StorePath is the sqlite trace-header store.
	StorePath string `json:"store_path,omitempty"`

	// Listen is the HTTP listen address.
	Listen string `json:"listen,omitempty"`

	// Units selects the distance units reported by the API (m, km, ft).
	Units string `json:"units,omitempty"`

	// EdgeTolerance overrides the boundary-edge association tolerance in
	// ground units. Zero selects the default of 50.
	EdgeTolerance float64 `json:"edge_tolerance,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *ServerConfig {
	return &ServerConfig{
		StorePath: "headers.db",
		Listen:    ":8080",
		Units:     units.Metres,
	}
}

// Load reads the configuration file at path, filling unset fields with
// defaults. A missing file is not an error: defaults apply.
func Load(path string) (*ServerConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = Default().StorePath
	}
	if cfg.Listen == "" {
		cfg.Listen = Default().Listen
	}
	if cfg.Units == "" {
		cfg.Units = Default().Units
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *ServerConfig) Validate() error {
	if !units.IsValid(c.Units) {
		return fmt.Errorf("invalid units %q, want one of %s", c.Units, units.GetValidUnitsString())
	}
	if c.EdgeTolerance < 0 {
		return fmt.Errorf("edge_tolerance must be non-negative, got %v", c.EdgeTolerance)
	}
	return nil
}

// Tolerance returns the effective edge-association tolerance.
func (c *ServerConfig) Tolerance() float64 {
	if c.EdgeTolerance <= 0 {
		return survey.DefaultEdgeTolerance
	}
	return c.EdgeTolerance
}
