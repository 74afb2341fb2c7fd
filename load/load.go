/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading and compiling stylesheets.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"mapaware.top/shapestyle/config"
	"mapaware.top/shapestyle/fs"
	"mapaware.top/shapestyle/internal/logger"
	"mapaware.top/shapestyle/stylesheet"
)

// ErrNetworkDisabled is returned for a URL argument when Options.Fetcher is nil.
var ErrNetworkDisabled = errors.New("network loading disabled")

// Options configures how stylesheets are loaded.
type Options struct {
	// Root is the directory relative paths and the config file are resolved from.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Strict overrides the config file's strict setting when non-nil.
	Strict *bool

	// Fetcher enables http:// and https:// stylesheet arguments.
	// Nil means URLs are rejected (default).
	Fetcher Fetcher

	// FetchTimeout is the maximum time to wait for a network fetch.
	// Defaults to DefaultTimeout when zero. Has no effect if Fetcher is nil.
	FetchTimeout time.Duration
}

// Result is a compiled stylesheet together with the config it was compiled under.
type Result struct {
	// Origin names where the stylesheet came from: a path, a URL or "inline".
	Origin string
	Source *stylesheet.Source
	Table  *stylesheet.Table
	Config *config.Config
}

// Load loads and compiles a stylesheet argument.
//
// The argument can be:
//   - Inline stylesheet text: ".polygon { border-width: 3px; }"
//   - Local file path: "shapes.css", "/srv/shapes.css" or "file:///srv/shapes.css"
//   - URL: "https://example.com/shapes.css" (requires Options.Fetcher)
//
// The loading process:
//  1. Loads config from .config/shapestyle.yaml under Root, if present
//  2. Applies Options values (they take precedence over config)
//  3. Reads the stylesheet text
//  4. Compiles it into a token table
func Load(ctx context.Context, arg string, opts Options) (*Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg := config.LoadOrDefault(filesystem, root)
	if opts.Strict != nil {
		cfg.Strict = *opts.Strict
	}

	src, origin, err := readSource(ctx, arg, root, filesystem, opts)
	if err != nil {
		return nil, err
	}

	table, err := stylesheet.Compile(src, cfg.ParseOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", origin, err)
	}
	logger.Debug("%s: %d tokens", origin, table.Len())

	return &Result{Origin: origin, Source: src, Table: table, Config: cfg}, nil
}

// IsURL reports whether arg names a stylesheet on the network.
func IsURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

// readSource turns a stylesheet argument into a Source.
func readSource(ctx context.Context, arg, root string, filesystem fs.FileSystem, opts Options) (*stylesheet.Source, string, error) {
	switch {
	case arg == "":
		return nil, "", fmt.Errorf("empty stylesheet argument")

	case stylesheet.IsInline(arg):
		src, err := stylesheet.NewSource(arg)
		return src, "inline", err

	case IsURL(arg):
		if opts.Fetcher == nil {
			return nil, arg, fmt.Errorf("%w: %s", ErrNetworkDisabled, arg)
		}
		timeout := opts.FetchTimeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		content, err := opts.Fetcher.Fetch(ctx, arg)
		if err != nil {
			return nil, arg, err
		}
		src, err := stylesheet.NewSourceBytes(content)
		return src, arg, err
	}

	path := stylesheet.StylesheetPath(arg)
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	src, err := stylesheet.ReadFile(filesystem, path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return src, path, nil
}
