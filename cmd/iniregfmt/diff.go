package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/iniregfmt/internal/driver"
)

var diffExitCode bool

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [paths...]",
		Short: "Show formatting changes as a unified diff",
		Long: `The diff command prints a unified diff between each file and its
formatted form. Files are not modified.

Example:
  iniregfmt diff settings.ini
  iniregfmt diff --exit-code ./config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args)
		},
	}

	cmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "Exit non-zero when differences are found")

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	results, err := run(cmd, args, driver.ModeDiff)
	if err != nil {
		return err
	}

	if jsonOut {
		if err := printResultsJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Err == nil && r.Diff != "" {
				printDiff(r.Diff)
			}
		}
		reportErrors(results)
	}

	if errs := countErrors(results); errs > 0 {
		return failed(errs)
	}
	if diffExitCode {
		for _, r := range results {
			if r.Changed {
				return fmt.Errorf("differences found")
			}
		}
	}
	return nil
}

// printDiff writes a unified diff, colored by line kind.
func printDiff(diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprint(os.Stdout, color.New(color.Bold).Sprint(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(os.Stdout, color.CyanString("%s", line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(os.Stdout, color.GreenString("%s", line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(os.Stdout, color.RedString("%s", line))
		default:
			fmt.Fprint(os.Stdout, line)
		}
	}
}
