package mocks

import (
	"io/fs"
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/lc/confy/internal/filesys"
)

var (
	_ filesys.FileOps = (*MockOsFS)(nil)
	_ filesys.File    = (*MockFile)(nil)
)

// MockOsFS is a mock implementation of the FileOps interface.
// It is generated using testify/mock and adheres to the methods defined in the OsFS struct.
type MockOsFS struct {
	mock.Mock
}

// Open mocks the Open method.
func (m *MockOsFS) Open(p string) (filesys.File, error) {
	args := m.Called(p)
	// Need to handle potential nil interface return
	var file filesys.File
	if args.Get(0) != nil {
		file = args.Get(0).(filesys.File)
	}
	return file, args.Error(1)
}

// OpenFile mocks the OpenFile method.
func (m *MockOsFS) OpenFile(p string, flag int, mode os.FileMode) (filesys.File, error) {
	args := m.Called(p, flag, mode)
	var file filesys.File
	if args.Get(0) != nil {
		file = args.Get(0).(filesys.File)
	}
	return file, args.Error(1)
}

// MkdirAll mocks the MkdirAll method.
func (m *MockOsFS) MkdirAll(p string, mode os.FileMode) error {
	args := m.Called(p, mode)
	return args.Error(0)
}

// ReadDir mocks the ReadDir method.
func (m *MockOsFS) ReadDir(p string) ([]fs.DirEntry, error) {
	args := m.Called(p)
	// Need to handle potential nil slice return
	var entries []fs.DirEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]fs.DirEntry)
	}
	return entries, args.Error(1)
}

// Rename mocks the Rename method.
func (m *MockOsFS) Rename(old, newPath string) error {
	args := m.Called(old, newPath)
	return args.Error(0)
}

// Remove mocks the Remove method.
func (m *MockOsFS) Remove(p string) error {
	args := m.Called(p)
	return args.Error(0)
}

// MockFile is a mock implementation of the File interface.
type MockFile struct {
	mock.Mock
}

// Read mocks the Read method.
func (m *MockFile) Read(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

// Write mocks the Write method.
func (m *MockFile) Write(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

// Close mocks the Close method.
func (m *MockFile) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Sync mocks the Sync method.
func (m *MockFile) Sync() error {
	args := m.Called()
	return args.Error(0)
}

// Name mocks the Name method.
func (m *MockFile) Name() string {
	args := m.Called()
	return args.String(0)
}
