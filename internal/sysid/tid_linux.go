//go:build linux

package sysid

import "golang.org/x/sys/unix"

// ThreadID returns the id of the OS thread running the caller. A goroutine
// may migrate between threads, so the value only distinguishes writers
// that run at the same instant.
func ThreadID() uint64 {
	return uint64(unix.Gettid())
}
