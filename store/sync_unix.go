//go:build linux || freebsd

package store

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes f's data to durable storage. Fdatasync skips the
// metadata-sync cost of a full fsync when only file contents changed.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
