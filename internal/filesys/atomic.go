package filesys

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultMaxStagingAttempts bounds the staging name loop.
const DefaultMaxStagingAttempts = 1024

// ErrStagingExhausted is returned when no free staging name was found.
var ErrStagingExhausted = errors.New("no free staging path")

// Step identifies the stage of an atomic write that failed.
type Step int

const (
	// StepOpen covers choosing and creating the staging file.
	StepOpen Step = iota + 1
	// StepWrite covers writing, syncing and closing the staging file.
	StepWrite
	// StepRename covers moving the staging file onto the target.
	StepRename
)

func (s Step) String() string {
	switch s {
	case StepOpen:
		return "open"
	case StepWrite:
		return "write"
	case StepRename:
		return "rename"
	default:
		return "step(" + strconv.Itoa(int(s)) + ")"
	}
}

// StepError reports which step of an atomic write failed.
type StepError struct {
	Step Step
	Path string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// AtomicWriter replaces a file through a uniquely named sibling:
//
//  1. staging file <stem>.<pid>_<tid>_<stamp>, created with O_EXCL
//  2. write + fsync(staging) + close
//  3. rename(staging, dst)
//  4. fsync(dir)
//
// On failure before the rename the staging file is removed and dst is
// left untouched.
type AtomicWriter struct {
	FS          FileOps
	Log         *zap.Logger
	Perm        os.FileMode
	PID         int
	ThreadID    func() uint64
	Now         func() time.Time
	MaxAttempts int
}

// Write atomically persists data to dst. The parent directory must exist.
func (w AtomicWriter) Write(dst string, data []byte) error {
	log := w.logger().With(zap.String("path", dst))

	f, staging, err := w.createStaging(dst)
	if err != nil {
		return &StepError{Step: StepOpen, Path: dst, Err: err}
	}
	log.Debug("staging file created", zap.String("staging", staging))

	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err == nil {
		err = f.Sync()
	}
	err = multierr.Append(err, f.Close())
	if err != nil {
		w.discard(log, staging)
		return &StepError{Step: StepWrite, Path: staging, Err: err}
	}

	if err := w.FS.Rename(staging, dst); err != nil {
		w.discard(log, staging)
		return &StepError{Step: StepRename, Path: dst, Err: err}
	}
	log.Debug("staging file renamed", zap.String("staging", staging), zap.Int("bytes", len(data)))

	// dst is already replaced; a failed directory sync must not turn
	// into a reported failure.
	w.syncDir(log, filepath.Dir(dst))
	return nil
}

func (w AtomicWriter) createStaging(dst string) (File, string, error) {
	maxAttempts := w.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxStagingAttempts
	}
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		staging := StagingPath(dst, w.PID, w.threadID(), w.stamp(attempt))
		f, err := w.FS.OpenFile(staging, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if err == nil {
			return f, staging, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, staging, err
		}
	}
	return nil, "", ErrStagingExhausted
}

// stamp is the wall clock in nanoseconds advanced by the attempt counter,
// or the bare counter when the clock is at or before the epoch.
func (w AtomicWriter) stamp(attempt int) int64 {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	if ns := now().UnixNano(); ns > 0 {
		return ns + int64(attempt-1)
	}
	return int64(attempt)
}

func (w AtomicWriter) threadID() uint64 {
	if w.ThreadID == nil {
		return 0
	}
	return w.ThreadID()
}

func (w AtomicWriter) logger() *zap.Logger {
	if w.Log == nil {
		return zap.NewNop()
	}
	return w.Log
}

func (w AtomicWriter) discard(log *zap.Logger, staging string) {
	if err := w.FS.Remove(staging); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("failed to remove staging file", zap.String("staging", staging), zap.Error(err))
	}
}

func (w AtomicWriter) syncDir(log *zap.Logger, dir string) {
	if runtime.GOOS == "windows" {
		return
	}
	d, err := w.FS.Open(dir)
	if err != nil {
		log.Warn("failed to open directory for sync", zap.String("dir", dir), zap.Error(err))
		return
	}
	if err := d.Sync(); err != nil {
		log.Warn("failed to sync directory", zap.String("dir", dir), zap.Error(err))
	}
	if err := d.Close(); err != nil {
		log.Warn("failed to close directory", zap.String("dir", dir), zap.Error(err))
	}
}

// StagingPath returns dst with its extension replaced by pid_tid_stamp.
func StagingPath(dst string, pid int, tid uint64, stamp int64) string {
	return stem(dst) + "." + strconv.Itoa(pid) + "_" + strconv.FormatUint(tid, 10) + "_" + strconv.FormatInt(stamp, 10)
}

// StagingInfo is the decoded form of a staging path.
type StagingInfo struct {
	PID   int
	TID   uint64
	Stamp int64
}

// ParseStagingPath reports whether candidate is a staging sibling of dst.
func ParseStagingPath(dst, candidate string) (StagingInfo, bool) {
	dst, candidate = filepath.Clean(dst), filepath.Clean(candidate)
	prefix := stem(dst) + "."
	if filepath.Dir(candidate) != filepath.Dir(dst) || !strings.HasPrefix(candidate, prefix) {
		return StagingInfo{}, false
	}
	parts := strings.Split(strings.TrimPrefix(candidate, prefix), "_")
	if len(parts) != 3 {
		return StagingInfo{}, false
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid < 0 {
		return StagingInfo{}, false
	}
	tid, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return StagingInfo{}, false
	}
	stamp, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return StagingInfo{}, false
	}
	return StagingInfo{PID: pid, TID: tid, Stamp: stamp}, true
}

// stem drops the extension of p. A leading dot alone ("/x/.rc") is part
// of the name, not an extension.
func stem(p string) string {
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return p
	}
	return strings.TrimSuffix(p, ext)
}
