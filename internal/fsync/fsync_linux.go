//go:build linux || freebsd

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data; metadata the rename does not need is skipped.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
