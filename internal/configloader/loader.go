// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered merging,
// environment variable support and validation.
package configloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdbuild/pkg/config"
	"github.com/yaklabco/gomdbuild/pkg/fsutil"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLI contains settings from command-line flags.
	// These take highest precedence.
	CLI *Layer
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLI)
//  2. Environment variables (GOMDBUILD_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gomdbuild.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gomdbuild/config.yaml)
//  6. System config (/etc/gomdbuild/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	files := []struct {
		path   string
		skip   bool
		source string
	}{
		{paths.System, opts.IgnoreSystemConfig, "system"},
		{paths.User, opts.IgnoreUserConfig, "user"},
		{paths.Project, opts.IgnoreProjectConfig, "project"},
		{paths.Explicit, false, "explicit"},
	}

	for _, f := range files {
		if f.skip || f.path == "" {
			continue
		}
		layer, err := loadConfigFile(ctx, f.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", f.source, err)
		}

		if validation := ValidateLayerWithFile(layer, f.path); !validation.Valid() {
			return nil, &validation.Errors[0]
		}
		cfg = merge(cfg, layer)
		result.LoadedFrom = append(result.LoadedFrom, f.path)
	}

	if !opts.IgnoreEnv {
		envLayer, err := LoadFromEnv()
		if err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		cfg = merge(cfg, envLayer)
	}

	cfg = merge(cfg, opts.CLI)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile reads one configuration file into a Layer.
// Unknown keys are rejected.
func loadConfigFile(ctx context.Context, path string) (*Layer, error) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	layer := &Layer{}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	if err := decoder.Decode(layer); err != nil {
		if errors.Is(err, io.EOF) {
			return layer, nil
		}
		return nil, fmt.Errorf("parse YAML %s: %w", path, err)
	}

	return layer, nil
}
