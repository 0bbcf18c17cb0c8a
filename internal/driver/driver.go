// Package driver formats INI and .reg files on disk.
package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/iniregfmt/internal/fsync"
	"github.com/joshuapare/iniregfmt/internal/logger"
	"github.com/joshuapare/iniregfmt/internal/mmfile"
	"github.com/joshuapare/iniregfmt/pkg/kvfmt"
	"github.com/joshuapare/iniregfmt/pkg/types"
)

// StdinPath names standard input in paths and results.
const StdinPath = "-"

var (
	errNoFiles        = errors.New("driver: no input files found")
	errUnknownDialect = errors.New("driver: cannot determine dialect (use --dialect)")
)

// Mode selects what happens to a formatted file.
type Mode uint8

const (
	// ModeWrite rewrites files whose formatting changed.
	ModeWrite Mode = iota
	// ModeCheck only reports whether files would change.
	ModeCheck
	// ModeDiff reports a unified diff of the changes.
	ModeDiff
	// ModeStdout returns formatted contents without touching files.
	ModeStdout
)

// Options configures a formatting run.
type Options struct {
	Mode Mode

	// Jobs bounds the number of files formatted at once. Zero means
	// GOMAXPROCS.
	Jobs int

	// Dialect, when not DialectUnknown, is used for every file.
	Dialect types.Dialect

	// Extensions selects files when walking directories and picks dialects.
	// Nil means types.DefaultExtensions.
	Extensions types.Extensions

	// Encoding declares the input encoding of files without a BOM.
	Encoding string

	LineEnding types.LineEnding
}

// Result captures the outcome for a single file.
type Result struct {
	Path      string
	Dialect   types.Dialect
	Changed   bool
	Err       error
	Formatted []byte // ModeStdout only
	Diff      string // ModeDiff only
}

// FormatPaths formats the given files and directories (recursively collecting
// files with a known extension). Results are returned in sorted path order.
// Per-file failures are reported on the Result; the returned error is for
// failures that stop the whole run.
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Extensions == nil {
		opts.Extensions = types.DefaultExtensions()
	}

	files, err := collectFiles(ctx, paths, opts.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errNoFiles
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatFile(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// FormatReader formats a document read from r, typically standard input.
// Without a forced dialect the content decides, falling back to INI. In
// ModeWrite the formatted document is returned in Formatted.
func FormatReader(r io.Reader, opts Options) Result {
	res := Result{Path: StdinPath}
	data, err := io.ReadAll(r)
	if err != nil {
		res.Err = fmt.Errorf("driver: read stdin: %w", err)
		return res
	}
	d := opts.Dialect
	if d == types.DialectUnknown {
		d, _ = kvfmt.Detect("", data, types.Extensions{})
		if d == types.DialectUnknown {
			d = types.DialectINI
		}
	}
	return finish(res, d, data, opts)
}

func formatFile(path string, opts Options) Result {
	res := Result{Path: path}

	data, err := mmfile.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	d := opts.Dialect
	if d == types.DialectUnknown {
		var ok bool
		if d, ok = kvfmt.Detect(path, data, opts.Extensions); !ok {
			res.Err = errUnknownDialect
			return res
		}
	}

	res = finish(res, d, data, opts)
	if res.Err != nil || opts.Mode != ModeWrite {
		return res
	}
	if res.Changed {
		if err := fsync.WriteFile(path, res.Formatted, 0o644); err != nil {
			res.Err = err
			res.Changed = false
		}
	}
	res.Formatted = nil
	return res
}

// finish formats data and fills the mode-specific fields of res.
func finish(res Result, d types.Dialect, data []byte, opts Options) Result {
	res.Dialect = d
	formatted, err := kvfmt.FormatBytes(data, types.FormatOptions{
		Dialect:       d,
		InputEncoding: opts.Encoding,
		LineEnding:    opts.LineEnding,
	})
	if err != nil {
		res.Err = err
		return res
	}
	res.Changed = !bytes.Equal(data, formatted)
	logger.Debug("formatted", "path", res.Path, "dialect", d.String(), "changed", res.Changed)

	switch opts.Mode {
	case ModeWrite, ModeStdout:
		res.Formatted = formatted
	case ModeDiff:
		if res.Changed {
			res.Diff, res.Err = unifiedDiff(res.Path, data, formatted, opts.Encoding)
		}
	}
	return res
}

func unifiedDiff(path string, before, after []byte, enc string) (string, error) {
	a, err := kvfmt.Decode(before, enc)
	if err != nil {
		return "", err
	}
	b, err := kvfmt.Decode(after, enc)
	if err != nil {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: path + ".orig",
		ToFile:   path,
		Context:  3,
	})
}

func collectFiles(ctx context.Context, paths []string, exts types.Extensions) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			// explicitly named files are always taken; the dialect is
			// resolved per file
			addFile(p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && d.Name() == ".git" {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := exts.Lookup(path); ok && d.Type().IsRegular() {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
