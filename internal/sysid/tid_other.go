//go:build !linux

package sysid

import "github.com/google/uuid"

// ThreadID returns a random per-call token. Outside Linux there is no
// portable way to read the OS thread id.
func ThreadID() uint64 {
	return uint64(uuid.New().ID())
}
