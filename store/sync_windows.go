//go:build windows

package store

import (
	"os"

	"golang.org/x/sys/windows"
)

// syncFile uses FlushFileBuffers, the Windows equivalent of fdatasync.
func syncFile(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
