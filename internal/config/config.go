// Package config loads the converter's run configuration. The schema uses
// pointer fields so partial JSON files are safe: anything omitted keeps
// its default through the Get* accessors.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nkorzoun/corsikaIOreader/internal/atmosphere"
	"github.com/nkorzoun/corsikaIOreader/internal/grisu"
)

// RunConfig is the root configuration for one conversion run.
type RunConfig struct {
	// Output destination: "stdout" or a file path to create.
	Output *string `json:"output,omitempty"`

	// VersionTag appears in the emitted header preamble.
	VersionTag *string `json:"version_tag,omitempty"`

	// AtmosphereModel selects a built-in atmosphere; negative disables
	// slant depth queries. AtmosphereProfile points at a tabulated
	// atmprof file and takes precedence when set.
	AtmosphereModel   *int    `json:"atmosphere_model,omitempty"`
	AtmosphereProfile *string `json:"atmosphere_profile,omitempty"`

	// Qeff is the quantum efficiency placeholder in the header's R line.
	Qeff *float64 `json:"qeff,omitempty"`

	// WriteCLine enables the supplemental per-shower C lines.
	WriteCLine *bool `json:"write_c_line,omitempty"`

	// StatsDB is the optional sqlite path for per-run summaries.
	StatsDB *string `json:"stats_db,omitempty"`

	// PlotsDir is the optional directory for diagnostics plots.
	PlotsDir *string `json:"plots_dir,omitempty"`
}

// Empty returns a RunConfig with all fields unset.
func Empty() *RunConfig {
	return &RunConfig{}
}

// Load reads a RunConfig from a JSON file. The file must carry a .json
// extension and stay under the size cap; omitted fields keep their
// defaults.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *RunConfig) Validate() error {
	if c.Qeff != nil {
		if *c.Qeff <= 0 || *c.Qeff > 1 {
			return fmt.Errorf("qeff must be in (0, 1], got %f", *c.Qeff)
		}
	}
	if c.Output != nil && *c.Output == "" {
		return fmt.Errorf("output must be %q or a file path, got empty string", grisu.StdoutDestination)
	}
	if c.AtmosphereProfile != nil && *c.AtmosphereProfile == "" {
		return fmt.Errorf("atmosphere_profile must be a file path, got empty string")
	}
	return nil
}

// GetOutput returns the output destination or the default (stdout).
func (c *RunConfig) GetOutput() string {
	if c.Output == nil {
		return grisu.StdoutDestination
	}
	return *c.Output
}

// GetVersionTag returns the version tag or the default.
func (c *RunConfig) GetVersionTag() string {
	if c.VersionTag == nil {
		return "corsikaIOreader"
	}
	return *c.VersionTag
}

// GetAtmosphereModel returns the atmosphere model id; negative disables
// the model.
func (c *RunConfig) GetAtmosphereModel() int {
	if c.AtmosphereModel == nil {
		return -1
	}
	return *c.AtmosphereModel
}

// GetAtmosphereProfile returns the atmprof path or "" when unset.
func (c *RunConfig) GetAtmosphereProfile() string {
	if c.AtmosphereProfile == nil {
		return ""
	}
	return *c.AtmosphereProfile
}

// GetQeff returns the quantum efficiency placeholder or its default.
func (c *RunConfig) GetQeff() float64 {
	if c.Qeff == nil {
		return 1.0
	}
	return *c.Qeff
}

// GetWriteCLine reports whether supplemental C lines are enabled.
func (c *RunConfig) GetWriteCLine() bool {
	if c.WriteCLine == nil {
		return false
	}
	return *c.WriteCLine
}

// GetStatsDB returns the stats database path or "" when disabled.
func (c *RunConfig) GetStatsDB() string {
	if c.StatsDB == nil {
		return ""
	}
	return *c.StatsDB
}

// GetPlotsDir returns the diagnostics directory or "" when disabled.
func (c *RunConfig) GetPlotsDir() string {
	if c.PlotsDir == nil {
		return ""
	}
	return *c.PlotsDir
}

// BuildAtmosphere constructs the atmosphere model selected by the
// configuration, or nil when disabled.
func (c *RunConfig) BuildAtmosphere() (*atmosphere.Model, error) {
	if p := c.GetAtmosphereProfile(); p != "" {
		return atmosphere.NewFromProfile(p)
	}
	if id := c.GetAtmosphereModel(); id >= 0 {
		return atmosphere.New(id)
	}
	return nil, nil
}
