/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for shapestyle.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"mapaware.top/shapestyle/cmd/render"
	"mapaware.top/shapestyle/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json, yaml")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, version.Info())
	case "yaml":
		return render.YAML(out, version.Info())
	case "text":
		_, err := fmt.Fprintf(out, "%s %s\n", version.Name, version.Get())
		return err
	default:
		return fmt.Errorf("invalid format %q: expected text, json or yaml", format)
	}
}
