package confy

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/lc/confy/internal/codec"
	"github.com/lc/confy/internal/filesys"
	"github.com/lc/confy/internal/sysid"
)

// write is the atomic replace of path with the encoding of v:
//
//  1. reject roots and prefixes, create the parent directory
//  2. encode; nothing has been opened for writing yet
//  3. stage into a uniquely named sibling, fsync, close
//  4. rename over path, fsync the directory
//
// Any failure leaves path as it was before the call.
func (p *Provider[T]) write(path string, v T) error {
	dir, ok := parentDir(path)
	if !ok {
		return badConfigDirectory(fmt.Sprintf("%q is a root or prefix", path))
	}
	if err := p.fs.MkdirAll(dir, dirMode); err != nil {
		return newError(ErrDirectoryCreationFailed, err)
	}

	data, err := codec.Marshal(v)
	if err != nil {
		return newError(ErrSerialize, err)
	}

	w := filesys.AtomicWriter{
		FS:       p.fs,
		Log:      p.log,
		Perm:     p.mode,
		PID:      sysid.ProcessID(),
		ThreadID: sysid.ThreadID,
		Now:      p.now,
	}
	if err := w.Write(path, data); err != nil {
		return classifyWriteError(err)
	}
	p.log.Debug("stored configuration", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// parentDir returns the directory holding path, or false when path is
// empty, a filesystem root or a volume prefix.
func parentDir(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	clean := filepath.Clean(path)
	dir := filepath.Dir(clean)
	if dir == clean || clean == filepath.VolumeName(clean) {
		return "", false
	}
	return dir, true
}

func classifyWriteError(err error) error {
	var stepErr *filesys.StepError
	if !errors.As(err, &stepErr) {
		return newError(ErrWriteConfigurationFile, err)
	}
	switch stepErr.Step {
	case filesys.StepOpen:
		return newError(ErrOpenConfigurationFile, stepErr.Err)
	default:
		return newError(ErrWriteConfigurationFile, stepErr.Err)
	}
}
