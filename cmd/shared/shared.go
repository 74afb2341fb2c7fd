/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package shared holds the settings every command reads from the root
// command's persistent flags, the environment and the config file.
package shared

import (
	"github.com/spf13/viper"

	"mapaware.top/shapestyle/fs"
	"mapaware.top/shapestyle/load"
)

// Viper keys bound by the root command.
const (
	KeyStrict  = "strict"
	KeyVerbose = "verbose"
	KeyNetwork = "network"
	KeyRoot    = "root"
)

// FileSystem is the filesystem commands read from and write to.
// Tests replace it with an in-memory one.
var FileSystem fs.FileSystem = fs.NewOSFileSystem()

// LoadOptions builds stylesheet loading options from the bound settings.
// Strict is only overridden when set by flag or environment.
func LoadOptions() load.Options {
	opts := load.Options{
		Root: viper.GetString(KeyRoot),
		FS:   FileSystem,
	}
	if viper.IsSet(KeyStrict) {
		strict := viper.GetBool(KeyStrict)
		opts.Strict = &strict
	}
	if viper.GetBool(KeyNetwork) {
		opts.Fetcher = load.NewHTTPFetcher(load.DefaultMaxSize)
	}
	return opts
}
