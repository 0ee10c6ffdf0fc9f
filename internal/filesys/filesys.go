// Package filesys provides file system abstractions used by the confy
// reader and atomic writer. The interfaces are small enough to be faked in
// tests so that every step of a write can be made to fail on purpose.
package filesys

import (
	"io"
	"io/fs"
	"os"
)

// File is the part of *os.File the reader and writer touch.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Sync() error
	Name() string
}

// FileOps is what the confy reader, writer and staging maintenance need.
// Staging files are created through OpenFile with O_EXCL, so the
// exist-check and the create are a single step.
type FileOps interface {
	Open(string) (File, error)
	OpenFile(string, int, os.FileMode) (File, error)
	MkdirAll(string, os.FileMode) error
	ReadDir(string) ([]fs.DirEntry, error)
	Rename(string, string) error
	Remove(string) error
}

// OS returns a file system implementation that delegates to the standard library.
func OS() OsFS {
	return OsFS{}
}

// OsFS implements FileOps against the local disk.
// All methods delegate to the standard library.
type OsFS struct{}

// Open returns a nil interface, not a typed nil, on failure.
func (OsFS) Open(p string) (File, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (OsFS) OpenFile(p string, flag int, m os.FileMode) (File, error) {
	f, err := os.OpenFile(p, flag, m)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (OsFS) MkdirAll(p string, m os.FileMode) error  { return os.MkdirAll(p, m) }
func (OsFS) ReadDir(p string) ([]fs.DirEntry, error) { return os.ReadDir(p) }
func (OsFS) Rename(oldPath, newPath string) error    { return os.Rename(oldPath, newPath) }
func (OsFS) Remove(p string) error                   { return os.Remove(p) }

var (
	_ FileOps = OsFS{}
	_ File    = (*os.File)(nil)
)
