package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/iniregfmt/pkg/types"
)

const (
	messyINI     = "b=2\na=1\n"
	formattedINI = "a = 1\nb = 2\n"
	messyREG     = "Windows Registry Editor Version 5.00\r\n[HKEY_CURRENT_USER\\T]\r\n\"b\"=1\r\n\"a\"=2\r\n"
	formattedREG = "Windows Registry Editor Version 5.00\r\n\r\n[HKEY_CURRENT_USER\\T]\r\n\"a\"=2\r\n\"b\"=1\r\n"
)

// writeTree creates files under a fresh temp dir and returns the dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFormatPaths_WriteDirectory(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"app.ini":          messyINI,
		"sub/export.reg":   messyREG,
		"sub/clean.ini":    formattedINI,
		"notes.txt":        messyINI,
		".git/config.ini":  messyINI,
		"deep/er/conf.inf": messyINI,
	})

	results, err := FormatPaths(context.Background(), []string{dir}, Options{Mode: ModeWrite, Jobs: 2})
	require.NoError(t, err)

	var paths []string
	changed := map[string]bool{}
	for _, r := range results {
		require.NoError(t, r.Err, r.Path)
		require.Nil(t, r.Formatted)
		rel, err := filepath.Rel(dir, r.Path)
		require.NoError(t, err)
		paths = append(paths, filepath.ToSlash(rel))
		changed[filepath.ToSlash(rel)] = r.Changed
	}
	require.Equal(t, []string{"app.ini", "deep/er/conf.inf", "sub/clean.ini", "sub/export.reg"}, paths)
	require.Equal(t, map[string]bool{
		"app.ini":          true,
		"deep/er/conf.inf": true,
		"sub/clean.ini":    false,
		"sub/export.reg":   true,
	}, changed)

	require.Equal(t, formattedINI, readFile(t, filepath.Join(dir, "app.ini")))
	require.Equal(t, formattedREG, readFile(t, filepath.Join(dir, "sub", "export.reg")))
	require.Equal(t, messyINI, readFile(t, filepath.Join(dir, "notes.txt")))
	require.Equal(t, messyINI, readFile(t, filepath.Join(dir, ".git", "config.ini")))
}

func TestFormatPaths_CheckDoesNotWrite(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ini": messyINI})
	path := filepath.Join(dir, "a.ini")

	results, err := FormatPaths(context.Background(), []string{path}, Options{Mode: ModeCheck})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Changed)
	require.Equal(t, types.DialectINI, results[0].Dialect)
	require.Equal(t, messyINI, readFile(t, path))
}

func TestFormatPaths_Stdout(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ini": messyINI})
	path := filepath.Join(dir, "a.ini")

	results, err := FormatPaths(context.Background(), []string{path}, Options{Mode: ModeStdout})
	require.NoError(t, err)
	require.Equal(t, formattedINI, string(results[0].Formatted))
	require.Equal(t, messyINI, readFile(t, path))
}

func TestFormatPaths_Diff(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ini": messyINI, "b.ini": formattedINI})

	results, err := FormatPaths(context.Background(), []string{dir}, Options{Mode: ModeDiff})
	require.NoError(t, err)
	require.Len(t, results, 2)

	diff := results[0].Diff
	require.Contains(t, diff, "--- "+filepath.Join(dir, "a.ini")+".orig")
	require.Contains(t, diff, "+++ "+filepath.Join(dir, "a.ini"))
	require.Contains(t, diff, "-b=2")
	require.Contains(t, diff, "+a = 1")

	require.False(t, results[1].Changed)
	require.Empty(t, results[1].Diff)
}

func TestFormatPaths_ExplicitFileDetectedByContent(t *testing.T) {
	dir := writeTree(t, map[string]string{"export.txt": messyREG, "plain.txt": messyINI})

	results, err := FormatPaths(context.Background(), []string{
		filepath.Join(dir, "export.txt"),
		filepath.Join(dir, "plain.txt"),
	}, Options{Mode: ModeCheck})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	require.Equal(t, types.DialectREG, results[0].Dialect)
	require.ErrorIs(t, results[1].Err, errUnknownDialect)
}

func TestFormatPaths_ForcedDialect(t *testing.T) {
	dir := writeTree(t, map[string]string{"settings.txt": messyINI})

	results, err := FormatPaths(context.Background(), []string{filepath.Join(dir, "settings.txt")}, Options{
		Mode:    ModeStdout,
		Dialect: types.DialectREG,
	})
	require.NoError(t, err)
	require.Equal(t, types.DialectREG, results[0].Dialect)
	require.Equal(t, "a=1\nb=2\n", string(results[0].Formatted))
}

func TestFormatPaths_CustomExtensions(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.conf": messyINI, "b.ini": messyINI})

	results, err := FormatPaths(context.Background(), []string{dir}, Options{
		Mode:       ModeCheck,
		Extensions: types.Extensions{".conf": types.DialectINI},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, strings.HasSuffix(results[0].Path, "a.conf"))
}

func TestFormatPaths_Errors(t *testing.T) {
	_, err := FormatPaths(context.Background(), []string{filepath.Join(t.TempDir(), "missing.ini")}, Options{})
	require.Error(t, err)

	_, err = FormatPaths(context.Background(), []string{writeTree(t, map[string]string{"x.txt": ""})}, Options{})
	require.ErrorIs(t, err, errNoFiles)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = FormatPaths(ctx, []string{t.TempDir()}, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormatPaths_BadEncoding(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ini": messyINI})

	results, err := FormatPaths(context.Background(), []string{dir}, Options{Mode: ModeCheck, Encoding: "ebcdic"})
	require.NoError(t, err)
	require.Error(t, results[0].Err)
}

func TestFormatReader(t *testing.T) {
	res := FormatReader(strings.NewReader(messyINI), Options{Mode: ModeStdout})
	require.NoError(t, res.Err)
	require.Equal(t, StdinPath, res.Path)
	require.Equal(t, types.DialectINI, res.Dialect)
	require.Equal(t, formattedINI, string(res.Formatted))

	res = FormatReader(strings.NewReader(messyREG), Options{Mode: ModeCheck})
	require.NoError(t, res.Err)
	require.Equal(t, types.DialectREG, res.Dialect)
	require.True(t, res.Changed)
}
