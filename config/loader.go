/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	stylefs "mapaware.top/shapestyle/fs"
	"mapaware.top/shapestyle/internal/logger"
	"mapaware.top/shapestyle/stylesheet"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "shapestyle"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/shapestyle.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
// JSON config files may contain comments and trailing commas.
func Load(filesystem stylefs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}

		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		logger.Debug("loaded config from %s", configPath)
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
// A config that fails to load is reported and replaced by the defaults.
func LoadOrDefault(filesystem stylefs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
		return Default()
	}
	if cfg == nil {
		return Default()
	}
	return cfg
}

func (c *Config) validate() error {
	if _, err := c.StateFlags(); err != nil {
		return fmt.Errorf("state: %w", err)
	}
	if err := c.Preview.Validate(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// ExpandStylesheets expands glob patterns in Stylesheets and returns
// paths rooted at rootDir, without duplicates.
func (c *Config) ExpandStylesheets(filesystem stylefs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	for _, pattern := range c.Stylesheets {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		for _, path := range expanded {
			if !seen[path] {
				seen[path] = true
				result = append(result, path)
			}
		}
	}

	return result, nil
}

// expandFilePath expands a single file path which may contain globs.
func expandFilePath(filesystem stylefs.FileSystem, rootDir, pattern string) ([]string, error) {
	pattern = stylesheet.StylesheetPath(pattern)

	// Make pattern absolute if relative
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// Errors are reported when the file is read
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem stylefs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))
	if !doublestar.ValidatePattern(relPattern) {
		return nil, fmt.Errorf("invalid glob %q", pattern)
	}

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}
