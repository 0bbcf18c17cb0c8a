package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/iniregfmt/internal/driver"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report files that are not formatted",
		Long: `The check command reports files whose formatting would change.
No file is modified. The command exits with a non-zero status when at least
one file is not in canonical form, which makes it suitable for CI.

Example:
  iniregfmt check .
  iniregfmt check --json settings.ini export.reg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	results, err := run(cmd, args, driver.ModeCheck)
	if err != nil {
		return err
	}

	pending := 0
	for _, r := range results {
		if r.Err == nil && r.Changed {
			pending++
		}
	}

	if jsonOut {
		if err := printResultsJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			switch {
			case r.Err != nil:
			case r.Changed:
				printInfo("%s %s\n", color.YellowString("would format"), r.Path)
			default:
				printVerbose("%s %s\n", color.GreenString("ok"), r.Path)
			}
		}
		reportErrors(results)
	}

	if errs := countErrors(results); errs > 0 {
		return failed(errs)
	}
	if pending > 0 {
		return fmt.Errorf("%d file(s) need formatting", pending)
	}
	printVerbose("all %d file(s) formatted\n", len(results))
	return nil
}
