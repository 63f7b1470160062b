// Package config loads experiment parameters from a JSON file.
//
// Every field is a pointer so that a file, and the command-line overrides
// merged on top of it, only set what they mention. The Get* methods fall back
// to the package defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/fracperc/cluster"
	"github.com/katalvlaran/fracperc/montecarlo"
)

// DefaultPath is the config file read when none is given on the command line.
const DefaultPath = "FractalPercolationMink.json"

// MaxFileSize bounds the size of a config file.
const MaxFileSize = 1 * 1024 * 1024

// Defaults.
const (
	DefaultSurvivalProb    = 0.5
	DefaultSubdivision     = 3
	DefaultNApproximations = 3
	DefaultNRuns           = 100
	DefaultSeed            = 17
	DefaultMixSeed         = true
	DefaultPrefix          = "output/"
	DefaultHistogramBins   = 20
)

// Config holds the experiment parameters and output switches.
type Config struct {
	SurvivalProb    *float64 `json:"survival_prob,omitempty"`
	Subdivision     *int     `json:"subdivision,omitempty"`
	NApproximations *int     `json:"n_approximations,omitempty"`
	NRuns           *int     `json:"n_runs,omitempty"`
	Seed            *uint32  `json:"seed,omitempty"`
	MixSeed         *bool    `json:"mix_seed,omitempty"`
	PercolatingOnly *bool    `json:"percolating_only,omitempty"`
	Labeler         *string  `json:"labeler,omitempty"` // backward-scan, union-find or flood-fill

	// Outputs
	PrefixOf      *string `json:"prefix_of,omitempty"`
	Image         *bool   `json:"image,omitempty"` // PGM of the last run
	PNG           *bool   `json:"png,omitempty"`   // heat map of the last run and χ histogram
	HistogramBins *int    `json:"histogram_bins,omitempty"`
	Database      *string `json:"database,omitempty"` // SQLite file; empty disables
}

// Load reads and validates the config file at path.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Merge overlays every field set in o onto c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	mergePtr(&c.SurvivalProb, o.SurvivalProb)
	mergePtr(&c.Subdivision, o.Subdivision)
	mergePtr(&c.NApproximations, o.NApproximations)
	mergePtr(&c.NRuns, o.NRuns)
	mergePtr(&c.Seed, o.Seed)
	mergePtr(&c.MixSeed, o.MixSeed)
	mergePtr(&c.PercolatingOnly, o.PercolatingOnly)
	mergePtr(&c.Labeler, o.Labeler)
	mergePtr(&c.PrefixOf, o.PrefixOf)
	mergePtr(&c.Image, o.Image)
	mergePtr(&c.PNG, o.PNG)
	mergePtr(&c.HistogramBins, o.HistogramBins)
	mergePtr(&c.Database, o.Database)
}

func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Validate checks the effective parameters.
func (c *Config) Validate() error {
	if c.HistogramBins != nil && *c.HistogramBins < 1 {
		return fmt.Errorf("histogram_bins must be at least 1, got %d", *c.HistogramBins)
	}
	_, err := c.Params()
	return err
}

// Params returns the Monte Carlo parameters described by c.
func (c *Config) Params() (montecarlo.Params, error) {
	strategy, err := cluster.ParseStrategy(c.GetLabeler())
	if err != nil {
		return montecarlo.Params{}, fmt.Errorf("invalid labeler: %w", err)
	}
	p := montecarlo.Params{
		Subdivision:     c.GetSubdivision(),
		Levels:          c.GetNApproximations(),
		P:               c.GetSurvivalProb(),
		Runs:            c.GetNRuns(),
		Seed:            c.GetSeed(),
		MixSeed:         c.GetMixSeed(),
		PercolatingOnly: c.GetPercolatingOnly(),
		Strategy:        strategy,
	}
	if err := p.Validate(); err != nil {
		return montecarlo.Params{}, err
	}
	return p, nil
}

func get[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// GetSurvivalProb returns survival_prob or the default.
func (c *Config) GetSurvivalProb() float64 { return get(c.SurvivalProb, DefaultSurvivalProb) }

// GetSubdivision returns subdivision or the default.
func (c *Config) GetSubdivision() int { return get(c.Subdivision, DefaultSubdivision) }

// GetNApproximations returns n_approximations or the default.
func (c *Config) GetNApproximations() int { return get(c.NApproximations, DefaultNApproximations) }

// GetNRuns returns n_runs or the default.
func (c *Config) GetNRuns() int { return get(c.NRuns, DefaultNRuns) }

// GetSeed returns seed or the default.
func (c *Config) GetSeed() uint32 { return get(c.Seed, uint32(DefaultSeed)) }

// GetMixSeed returns mix_seed or the default (mixing on).
func (c *Config) GetMixSeed() bool { return get(c.MixSeed, DefaultMixSeed) }

// GetPercolatingOnly returns percolating_only or false.
func (c *Config) GetPercolatingOnly() bool { return get(c.PercolatingOnly, false) }

// GetLabeler returns labeler or the backward scan.
func (c *Config) GetLabeler() string { return get(c.Labeler, cluster.BackwardScan.String()) }

// GetPrefixOf returns prefix_of or the default.
func (c *Config) GetPrefixOf() string { return get(c.PrefixOf, DefaultPrefix) }

// GetImage returns image or false.
func (c *Config) GetImage() bool { return get(c.Image, false) }

// GetPNG returns png or false.
func (c *Config) GetPNG() bool { return get(c.PNG, false) }

// GetHistogramBins returns histogram_bins or the default.
func (c *Config) GetHistogramBins() int { return get(c.HistogramBins, DefaultHistogramBins) }

// GetDatabase returns database or "".
func (c *Config) GetDatabase() string { return get(c.Database, "") }
