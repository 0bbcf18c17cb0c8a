// Package fsync replaces files durably: the new contents are written to a
// temporary file next to the target, flushed to disk, and renamed over it.
package fsync

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile atomically replaces path with data. The original file mode is
// kept when path exists; perm is used otherwise.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("fsync: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("fsync: write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("fsync: chmod %s: %w", tmpName, err)
	}
	if err := fdatasync(tmp); err != nil {
		return fmt.Errorf("fsync: sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fsync: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		committed = true
		return fmt.Errorf("fsync: replace %s: %w", path, err)
	}
	committed = true
	return nil
}
