/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for shapestyle.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mapaware.top/shapestyle/cmd/check"
	"mapaware.top/shapestyle/cmd/parse"
	"mapaware.top/shapestyle/cmd/preview"
	"mapaware.top/shapestyle/cmd/query"
	"mapaware.top/shapestyle/cmd/shared"
	"mapaware.top/shapestyle/cmd/version"
	"mapaware.top/shapestyle/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "shapestyle",
	Short: "Parse and apply shape stylesheets",
	Long: `shapestyle compiles the CSS-like stylesheets used to style map shapes into
token tables, resolves the draw style of a shape and renders previews.

Settings can also come from SHAPESTYLE_* environment variables, e.g.
SHAPESTYLE_STRICT=true, and from .config/shapestyle.yaml.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool(shared.KeyStrict, false, "Treat malformed stylesheets as errors (default from config strict)")
	flags.BoolP(shared.KeyVerbose, "v", false, "Log what lenient parsing skips")
	flags.Bool(shared.KeyNetwork, false, "Allow http(s) stylesheet URLs")
	flags.String(shared.KeyRoot, ".", "Directory to resolve relative paths and the config file from")

	for _, key := range []string{shared.KeyStrict, shared.KeyVerbose, shared.KeyNetwork, shared.KeyRoot} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("SHAPESTYLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(query.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(preview.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func setup(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(viper.GetBool(shared.KeyVerbose))
	return nil
}
