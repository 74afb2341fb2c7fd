/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for shapestyle.
package config

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"mapaware.top/shapestyle/preview"
	"mapaware.top/shapestyle/stylesheet"
)

// Config represents the shapestyle configuration.
type Config struct {
	// Strict parses stylesheets in strict mode.
	Strict bool `yaml:"strict" json:"strict"`

	// Stylesheets lists stylesheet paths or globs checked by default.
	Stylesheets []string `yaml:"stylesheets" json:"stylesheets"`

	// StyleClass is the default selector list for query and preview.
	StyleClass SelectorList `yaml:"styleClass" json:"styleClass"`

	// State is the default pseudo-state, e.g. "hilight dragging".
	State string `yaml:"state" json:"state"`

	// Preview sizes rendered previews.
	Preview preview.Options `yaml:"preview" json:"preview"`
}

// SelectorList is a list of selectors.
// It can be written as a list or as a single comma-separated string.
type SelectorList []string

// ParseSelectorList splits s on commas and spaces.
func ParseSelectorList(s string) SelectorList {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// UnmarshalYAML handles both string and list forms for SelectorList.
func (l *SelectorList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*l = ParseSelectorList(node.Value)
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*l = list
	return nil
}

// UnmarshalJSON handles both string and list forms for SelectorList.
func (l *SelectorList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = ParseSelectorList(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Preview: preview.Options{
			Width:  preview.DefaultWidth,
			Height: preview.DefaultHeight,
			DPI:    preview.DefaultDPI,
		},
	}
}

// ParseOptions returns the stylesheet parse options the config asks for.
func (c *Config) ParseOptions() stylesheet.Options {
	return stylesheet.Options{Strict: c.Strict}
}

// StateFlags parses State into a pseudo-state mask.
func (c *Config) StateFlags() (stylesheet.Flags, error) {
	if c.State == "" {
		return stylesheet.FlagNone, nil
	}
	return stylesheet.ParseFlags(c.State)
}
