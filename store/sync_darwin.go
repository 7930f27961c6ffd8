//go:build darwin

package store

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile uses F_FULLFSYNC, the only Darwin primitive that survives a
// power loss rather than just a drive cache flush; Darwin has no
// fdatasync.
func syncFile(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
