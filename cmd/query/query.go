/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package query provides the query command for shapestyle.
package query

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mapaware.top/shapestyle/cmd/render"
	"mapaware.top/shapestyle/cmd/shared"
	"mapaware.top/shapestyle/config"
	"mapaware.top/shapestyle/drawstyle"
	"mapaware.top/shapestyle/internal/logger"
	"mapaware.top/shapestyle/load"
	"mapaware.top/shapestyle/stylesheet"
)

// Cmd is the query cobra command.
var Cmd = &cobra.Command{
	Use:   "query <stylesheet>",
	Short: "Show the blocks and draw style that apply to a shape",
	Long: `Show which selector blocks apply to a shape with the given style
classes in the given pseudo-state, and the draw style they resolve to.

Later blocks override earlier ones. The wildcard block always applies.

Examples:
  shapestyle query shapes.css --styleclass .polygon
  shapestyle query shapes.css --styleclass .polygon,#123 --state hilight
  shapestyle query shapes.css --styleclass .line --format json`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("styleclass", "", "Comma-separated selectors of the shape (default from config styleClass)")
	Cmd.Flags().String("state", "", "Pseudo-states of the shape, e.g. \"hilight dragging\" (default from config state)")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json, yaml")
}

// Selection resolves the selectors and pseudo-state a command applies,
// falling back to the config when the flags are empty.
func Selection(cmd *cobra.Command, cfg *config.Config) ([]string, stylesheet.Flags, error) {
	styleClass, _ := cmd.Flags().GetString("styleclass")
	stateFlag, _ := cmd.Flags().GetString("state")

	selectors := []string(cfg.StyleClass)
	if styleClass != "" {
		selectors = config.ParseSelectorList(styleClass)
	}

	state, err := cfg.StateFlags()
	if stateFlag != "" {
		state, err = stylesheet.ParseFlags(stateFlag)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("invalid state: %w", err)
	}
	return selectors, state, nil
}

type output struct {
	Selectors []string         `json:"selectors" yaml:"selectors"`
	State     []string         `json:"state" yaml:"state"`
	Blocks    []block          `json:"blocks" yaml:"blocks"`
	Style     render.StyleView `json:"style" yaml:"style"`
	Errors    []string         `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type block struct {
	Index        int               `json:"index" yaml:"index"`
	Selector     string            `json:"selector" yaml:"selector"`
	Flags        []string          `json:"flags,omitempty" yaml:"flags,omitempty"`
	Declarations map[string]string `json:"declarations" yaml:"declarations"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	result, err := load.Load(cmd.Context(), args[0], shared.LoadOptions())
	if err != nil {
		return err
	}

	selectors, state, err := Selection(cmd, result.Config)
	if err != nil {
		return err
	}

	table := result.Table
	out := output{Selectors: selectors, State: state.Names()}
	for _, i := range table.Match(selectors, state) {
		b := block{Index: i, Selector: table.Text(i), Flags: table.Flags(i).Names(), Declarations: map[string]string{}}
		for k, v := range table.Declarations(i) {
			b.Declarations[k] = v
		}
		out.Blocks = append(out.Blocks, b)
	}

	style, styleErr := drawstyle.Resolve(table, selectors, state)
	out.Style = render.ViewStyle(style)
	if styleErr != nil {
		logger.Warn("%v", styleErr)
		out.Errors = append(out.Errors, styleErr.Error())
	}

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(w, out)
	case "yaml":
		return render.YAML(w, out)
	case "text":
		return writeText(w, table, out, style)
	default:
		return fmt.Errorf("invalid format %q: expected text, json or yaml", format)
	}
}

func writeText(w io.Writer, table *stylesheet.Table, out output, style drawstyle.Style) error {
	for _, b := range out.Blocks {
		header := b.Selector
		if f := table.Flags(b.Index); f != stylesheet.FlagNone {
			header += " " + f.String()
		}
		if _, err := fmt.Fprintf(w, "/* %s */\n", header); err != nil {
			return err
		}
		for k, v := range table.Declarations(b.Index) {
			if _, err := fmt.Fprintf(w, "  %s: %s;\n", k, v); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, "/* resolved */"); err != nil {
		return err
	}
	return render.Style(w, style)
}
