// Package buildinfo exposes the version and commit of the confy command.
// Both are set at link-time.
package buildinfo

import "github.com/lc/confy/internal/codec"

// Version is set at link-time with –ldflags.
var Version = "v0.1.0"

// Commit is set at link-time with –ldflags.
// Default is "unknown" so tests and "go run ." still work.
var Commit = "unknown"

// Codec is the configuration format compiled into this build.
const Codec = codec.Name
