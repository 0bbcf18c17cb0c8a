package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/iniregfmt/internal/config"
	"github.com/joshuapare/iniregfmt/internal/driver"
	"github.com/joshuapare/iniregfmt/internal/logger"
	"github.com/joshuapare/iniregfmt/pkg/types"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string
	logFile    string

	// cfg is resolved before any subcommand runs
	cfg = config.DefaultConfig()

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "iniregfmt",
	Short: "Format INI and Windows Registry (.reg) files",
	Long: `iniregfmt rewrites INI files and Windows Registry export files into a
canonical, diff-friendly layout: trimmed lines, single blank lines between
sections, comments kept with the entry they describe, and entries sorted
within each section.

Files are formatted in place, keeping their encoding (UTF-8, UTF-16LE with
BOM as written by regedit.exe, or Windows-1252) and line endings.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: nearest "+config.ConfigFileName+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append JSON logs to this file")
	rootCmd.PersistentFlags().IntP("jobs", "j", 0, "Files formatted in parallel (0 = number of CPUs)")
	rootCmd.PersistentFlags().String("dialect", "", "Force dialect for every file (ini, reg)")
	rootCmd.PersistentFlags().String("line-ending", "", "Output line endings (auto, lf, crlf)")
	rootCmd.PersistentFlags().String("encoding", "", "Input encoding for files without BOM (utf-8, utf-16le, windows-1252)")
}

func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	var err error
	closeLog, err = logger.Init(logger.Options{
		Enabled: verbose || logFile != "",
		Verbose: verbose,
		JSON:    jsonOut,
		File:    logFile,
	})
	if err != nil {
		return err
	}

	loaded, path, err := config.Load(cmd.Context(), config.LoadOptions{
		ConfigFilePath: configPath,
		Flags:          cmd.Flags(),
	})
	if err != nil {
		return err
	}
	cfg = loaded
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}

// driverOptions builds a run configuration for mode from the resolved config.
func driverOptions(mode driver.Mode) driver.Options {
	opts := driver.Options{
		Mode:       mode,
		Jobs:       cfg.Jobs,
		Extensions: cfg.Extensions(),
		Encoding:   cfg.Encoding,
		LineEnding: cfg.FormatOptions(types.DialectUnknown).LineEnding,
	}
	if d, ok := cfg.ForcedDialect(); ok {
		opts.Dialect = d
	}
	return opts
}

// run formats stdin when no paths (or "-") are given, files otherwise.
func run(cmd *cobra.Command, args []string, mode driver.Mode) ([]driver.Result, error) {
	opts := driverOptions(mode)
	if len(args) == 0 || (len(args) == 1 && args[0] == driver.StdinPath) {
		if mode == driver.ModeWrite {
			opts.Mode = driver.ModeStdout
		}
		return []driver.Result{driver.FormatReader(cmd.InOrStdin(), opts)}, nil
	}
	return driver.FormatPaths(cmd.Context(), args, opts)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, color.RedString("Error: ")+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// resultJSON is the JSON shape of a per-file result.
type resultJSON struct {
	Path    string `json:"path"`
	Dialect string `json:"dialect"`
	Changed bool   `json:"changed"`
	Diff    string `json:"diff,omitempty"`
	Error   string `json:"error,omitempty"`
}

func printResultsJSON(results []driver.Result) error {
	payload := make([]resultJSON, 0, len(results))
	for _, r := range results {
		jr := resultJSON{Path: r.Path, Dialect: r.Dialect.String(), Changed: r.Changed, Diff: r.Diff}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		payload = append(payload, jr)
	}
	return printJSON(payload)
}

// reportErrors prints per-file errors and returns how many there were.
func reportErrors(results []driver.Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
			printError("%s: %v\n", r.Path, r.Err)
		}
	}
	return n
}
