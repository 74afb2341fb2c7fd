/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for shapestyle.
package check

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mapaware.top/shapestyle/cmd/shared"
	"mapaware.top/shapestyle/config"
	"mapaware.top/shapestyle/load"
	"mapaware.top/shapestyle/validator"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check stylesheets for errors",
	Long: `Parse stylesheets in strict mode and report every problem.

Declaration keys and values are checked against the draw style
vocabulary as well; pass --values=false to skip that.

Without arguments, the stylesheets listed in the config file are checked.
Pass --strict=false to only report ceiling violations.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
	Cmd.Flags().Bool("values", true, "Check declaration keys and values")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	values, _ := cmd.Flags().GetBool("values")
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	opts := shared.LoadOptions()
	if opts.Strict == nil {
		strict := true
		opts.Strict = &strict
	}

	files := args
	if len(files) == 0 {
		root := viper.GetString(shared.KeyRoot)
		if root == "" {
			root = "."
		}
		cfg := config.LoadOrDefault(opts.FS, root)
		expanded, err := cfg.ExpandStylesheets(opts.FS, root)
		if err != nil {
			return fmt.Errorf("error expanding config stylesheets: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no stylesheets found in config")
	}

	failed := 0
	for _, file := range files {
		if !quiet {
			_, _ = fmt.Fprintf(out, "Checking %s...\n", file)
		}

		result, err := load.Load(cmd.Context(), file, opts)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			failed++
			continue
		}

		if values {
			if problems := validator.ValidateWithPath(result.Table, result.Origin); len(problems) > 0 {
				for _, p := range problems {
					_, _ = fmt.Fprintf(errOut, "Error: %s\n", p.Error())
				}
				failed++
				continue
			}
		}

		if !quiet {
			selectors := 0
			for i := 0; i < result.Table.Len(); i++ {
				if result.Table.IsSelector(i) {
					selectors++
				}
			}
			_, _ = fmt.Fprintf(out, "  %d tokens, %d selectors\n", result.Table.Len(), selectors)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d stylesheets failed", failed, len(files))
	}

	if !quiet {
		_, _ = fmt.Fprintln(out, "All stylesheets valid.")
	}
	return nil
}
