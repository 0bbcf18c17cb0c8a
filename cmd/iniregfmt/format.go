package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/iniregfmt/internal/driver"
)

var formatStdout bool

func init() {
	rootCmd.AddCommand(newFormatCmd())
}

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Format files in place",
		Long: `The format command rewrites INI and .reg files into canonical form.

Directories are searched recursively for files with a known extension
(.ini, .inf, .cfg, .reg by default). Files that are already formatted are
left untouched. With no paths, or "-", the document is read from standard
input and the result is written to standard output.

Example:
  iniregfmt format settings.ini
  iniregfmt format ./config ./exports
  iniregfmt format --stdout export.reg
  cat app.ini | iniregfmt format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args)
		},
	}

	cmd.Flags().BoolVar(&formatStdout, "stdout", false, "Print formatted output instead of writing files")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	mode := driver.ModeWrite
	if formatStdout {
		mode = driver.ModeStdout
	}

	results, err := run(cmd, args, mode)
	if err != nil {
		return err
	}

	// Stdin always prints
	if mode == driver.ModeStdout || (len(results) == 1 && results[0].Path == driver.StdinPath) {
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			if _, err := os.Stdout.Write(r.Formatted); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		return failed(reportErrors(results))
	}

	if jsonOut {
		if err := printResultsJSON(results); err != nil {
			return err
		}
		return failed(countErrors(results))
	}

	changed := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if r.Changed {
			changed++
			printInfo("%s %s\n", color.GreenString("formatted"), r.Path)
		} else {
			printVerbose("%s %s\n", color.HiBlackString("unchanged"), r.Path)
		}
	}
	errs := reportErrors(results)
	printInfo("%d file(s) formatted, %d unchanged\n", changed, len(results)-changed-errs)
	return failed(errs)
}

// failed converts a per-file error count into the command's error.
func failed(n int) error {
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%d file(s) could not be processed", n)
}

func countErrors(results []driver.Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
