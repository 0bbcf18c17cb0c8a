package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/iniregfmt/internal/driver"
	"github.com/joshuapare/iniregfmt/internal/mmfile"
	"github.com/joshuapare/iniregfmt/pkg/kvfmt"
	"github.com/joshuapare/iniregfmt/pkg/types"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <path>",
		Short: "Show document statistics",
		Long: `The stats command parses a file and prints how many sections, entries,
comments and opaque lines it contains.

Example:
  iniregfmt stats settings.ini
  iniregfmt stats --json export.reg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args)
		},
	}
	return cmd
}

type statsJSON struct {
	Path     string `json:"path"`
	Dialect  string `json:"dialect"`
	Sections int    `json:"sections"`
	Entries  int    `json:"entries"`
	Comments int    `json:"comments"`
	Inline   int    `json:"inline_comments"`
	Opaque   int    `json:"opaque_lines"`
	Header   bool   `json:"has_header"`
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]
	printVerbose("Reading %s\n", path)

	var (
		data []byte
		err  error
	)
	if path == driver.StdinPath {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = mmfile.ReadFile(path)
	}
	if err != nil {
		return err
	}

	text, err := kvfmt.Decode(data, cfg.Encoding)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	d, ok := cfg.ForcedDialect()
	if !ok {
		if d, ok = kvfmt.Detect(path, []byte(text), cfg.Extensions()); !ok {
			d = types.DialectINI
		}
	}

	st := kvfmt.Analyze(d, text)

	if jsonOut {
		return printJSON(statsJSON{
			Path:     path,
			Dialect:  d.String(),
			Sections: st.Sections,
			Entries:  st.Entries,
			Comments: st.Comments,
			Inline:   st.Inline,
			Opaque:   st.Opaque,
			Header:   st.HasHeader,
		})
	}

	printInfo("File:     %s\n", path)
	printInfo("Dialect:  %s\n", d)
	if d == types.DialectREG {
		printInfo("Header:   %t\n", st.HasHeader)
	}
	printInfo("Sections: %d\n", st.Sections)
	printInfo("Entries:  %d\n", st.Entries)
	printInfo("Comments: %d (%d inline)\n", st.Comments, st.Inline)
	printInfo("Opaque:   %d\n", st.Opaque)
	return nil
}
