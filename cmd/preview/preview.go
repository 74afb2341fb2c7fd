/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package preview provides the preview command for shapestyle.
package preview

import (
	"fmt"

	"github.com/spf13/cobra"

	"mapaware.top/shapestyle/cmd/query"
	"mapaware.top/shapestyle/cmd/shared"
	"mapaware.top/shapestyle/drawstyle"
	"mapaware.top/shapestyle/internal/logger"
	"mapaware.top/shapestyle/load"
	previewlib "mapaware.top/shapestyle/preview"
)

// Cmd is the preview cobra command.
var Cmd = &cobra.Command{
	Use:   "preview <stylesheet>",
	Short: "Render a sample shape in a resolved style",
	Long: `Resolve the draw style for the given style classes and pseudo-state and
render a sample polygon with a hole in it to a PNG file.

Examples:
  shapestyle preview shapes.css --styleclass .polygon --outpng polygon.png
  shapestyle preview shapes.css --styleclass .polygon --state hilight \
    --width 1024 --height 768 --dpi 96 --outpng hilight.png`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("styleclass", "", "Comma-separated selectors of the shape (default from config styleClass)")
	Cmd.Flags().String("state", "", "Pseudo-states of the shape (default from config state)")
	Cmd.Flags().StringP("outpng", "o", "", "Output PNG file")
	Cmd.Flags().Int("width", 0, fmt.Sprintf("Image width in pixels, %d-%d (default from config, else %d)",
		previewlib.MinWidth, previewlib.MaxWidth, previewlib.DefaultWidth))
	Cmd.Flags().Int("height", 0, fmt.Sprintf("Image height in pixels, %d-%d (default from config, else %d)",
		previewlib.MinHeight, previewlib.MaxHeight, previewlib.DefaultHeight))
	Cmd.Flags().Int("dpi", 0, fmt.Sprintf("Resolution, %d-%d (default from config, else %d)",
		previewlib.MinDPI, previewlib.MaxDPI, previewlib.DefaultDPI))
	_ = Cmd.MarkFlagRequired("outpng")
}

func run(cmd *cobra.Command, args []string) error {
	outPNG, _ := cmd.Flags().GetString("outpng")

	result, err := load.Load(cmd.Context(), args[0], shared.LoadOptions())
	if err != nil {
		return err
	}

	selectors, state, err := query.Selection(cmd, result.Config)
	if err != nil {
		return err
	}

	opts := result.Config.Preview
	for name, field := range map[string]*int{"width": &opts.Width, "height": &opts.Height, "dpi": &opts.DPI} {
		if v, _ := cmd.Flags().GetInt(name); v != 0 {
			*field = v
		}
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	style, err := drawstyle.Resolve(result.Table, selectors, state)
	if err != nil {
		logger.Warn("%v", err)
	}

	if err := previewlib.RenderFile(shared.FileSystem, outPNG, style, opts); err != nil {
		return err
	}
	logger.Info("wrote %s (%dx%d at %d dpi)", outPNG, opts.Width, opts.Height, opts.DPI)
	return nil
}
