package confy

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lc/confy/internal/filesys"
)

// StagingFile is a leftover from a write that never reached its rename,
// typically because the writing process died.
type StagingFile struct {
	Path    string
	PID     int
	Size    int64
	ModTime time.Time
}

// StagingFiles lists staging siblings of path, oldest first.
func (p *Provider[T]) StagingFiles(path string) ([]StagingFile, error) {
	dir, ok := parentDir(path)
	if !ok {
		return nil, nil
	}
	entries, err := p.fs.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, newError(ErrReadConfigurationFile, err)
	}

	var files []StagingFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		candidate := filepath.Join(dir, e.Name())
		info, ok := filesys.ParseStagingPath(path, candidate)
		if !ok {
			continue
		}
		sf := StagingFile{Path: candidate, PID: info.PID}
		if fi, err := e.Info(); err == nil {
			sf.Size = fi.Size()
			sf.ModTime = fi.ModTime()
		}
		files = append(files, sf)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})
	return files, nil
}

// CleanStaging removes the staging siblings of path whose writer is no
// longer running and returns the removed paths. Files owned by a live
// process, this one included, are never touched.
func (p *Provider[T]) CleanStaging(path string) ([]string, error) {
	files, err := p.StagingFiles(path)
	if err != nil {
		return nil, err
	}

	var (
		removed []string
		errs    error
	)
	for _, sf := range files {
		if p.procs.Alive(sf.PID) {
			continue
		}
		if err := p.fs.Remove(sf.Path); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		p.log.Debug("removed stale staging file", zap.String("staging", sf.Path), zap.Int("pid", sf.PID))
		removed = append(removed, sf.Path)
	}
	if errs != nil {
		return removed, newError(ErrWriteConfigurationFile, errs)
	}
	return removed, nil
}

// StagingFiles lists leftover staging siblings of path.
func StagingFiles(path string) ([]StagingFile, error) {
	return New[struct{}]().StagingFiles(path)
}

// CleanStaging removes leftover staging siblings of path whose writer is gone.
func CleanStaging(path string) ([]string, error) {
	return New[struct{}]().CleanStaging(path)
}
