// Package sysid exposes the process and thread identifiers that feed the
// staging file disambiguator.
package sysid

import "os"

// ProcessID returns the current process id.
func ProcessID() int { return os.Getpid() }
