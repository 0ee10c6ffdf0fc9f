// Package process answers whether the process that left a staging file
// behind is still running.
package process

import (
	"os"

	"github.com/mitchellh/go-ps"
)

var _ Checker = (*DefaultChecker)(nil)

// Checker is an interface for checking if a process is running.
type Checker interface {
	Alive(pid int) bool
}

// DefaultChecker provides the default implementation of Checker.
type DefaultChecker struct{}

// Alive reports whether a process with the given pid is running. When the
// process table cannot be read the process is assumed to be alive, so
// nothing is ever cleaned up on a guess.
func (DefaultChecker) Alive(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	p, err := ps.FindProcess(pid)
	if err != nil {
		return true
	}
	return p != nil
}
