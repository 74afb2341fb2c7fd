/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for shapestyle.
package parse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"mapaware.top/shapestyle/cmd/render"
	"mapaware.top/shapestyle/cmd/shared"
	"mapaware.top/shapestyle/load"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse <stylesheet>",
	Short: "Parse a stylesheet and print its token table",
	Long: `Parse a stylesheet into its token table and print it.

The stylesheet argument is inline text when it contains braces and does not
start with one, otherwise a file path (file:// accepted) or, with --network,
an http(s) URL.

Examples:
  shapestyle parse shapes.css
  shapestyle parse --format table --kind selector shapes.css
  shapestyle parse '.polygon hilight { border-width: 3px; }'`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", render.FormatText, "Output format: "+strings.Join(render.ValidFormats(), ", "))
	Cmd.Flags().String("kind", "", "Filter table rows by kind: selector, class, id, wildcard, key, value")
	Cmd.Flags().Bool("color", false, "Show color swatches in table output")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	kind, _ := cmd.Flags().GetString("kind")
	color, _ := cmd.Flags().GetBool("color")

	if !slices.Contains(render.ValidFormats(), format) {
		return fmt.Errorf("invalid format %q: expected one of %s", format, strings.Join(render.ValidFormats(), ", "))
	}

	result, err := load.Load(cmd.Context(), args[0], shared.LoadOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case render.FormatJSON:
		return render.JSON(out, result.Table)
	case render.FormatYAML:
		return render.YAML(out, result.Table)
	case render.FormatTable:
		return render.Table(out, render.FilterRows(render.ComputeRows(result.Table), kind), color)
	case render.FormatMarkdown:
		return render.Markdown(out, render.FilterRows(render.ComputeRows(result.Table), kind))
	default:
		return render.Text(out, result.Table)
	}
}
