// Package config holds the tunable knobs of the parse pipeline and loads
// them from a YAML file for the CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eqforge/sidl/internal/core/diag"
	"github.com/eqforge/sidl/internal/core/observability/log"
)

type Options struct {
	// LogLevel is one of debug, info, warn, error, silent.
	LogLevel string `yaml:"log_level"`
	// Heuristics toggles the prefix-derived parent assignment stage.
	Heuristics bool `yaml:"heuristic_assignment"`
	// RejectDuplicateIDs turns ScreenID collisions from a diagnostic into
	// a load failure.
	RejectDuplicateIDs bool `yaml:"reject_duplicate_ids"`
	// CacheSize bounds the loader's parsed-document cache.
	CacheSize int `yaml:"cache_size"`
	// Pattern selects skin files when loading a directory.
	Pattern string `yaml:"pattern"`
}

func Default() Options {
	return Options{
		LogLevel:   "warn",
		Heuristics: true,
		CacheSize:  64,
		Pattern:    "EQUI_*.xml",
	}
}

// Load reads options from a YAML file, layered over the defaults so
// omitted keys keep their default values.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, diag.NewDocumentError(diag.ErrDocumentUnavailable, path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, diag.NewDocumentError(diag.ErrMalformedDocument, path, err)
	}
	return opts, nil
}

func (o Options) Level() log.Level {
	return log.ParseLevel(o.LogLevel)
}
