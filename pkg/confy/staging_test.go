package confy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lc/confy/internal/filesys"
	"github.com/lc/confy/internal/mocks"
)

type StagingTestSuite struct {
	suite.Suite
	dir   string
	path  string
	procs *mocks.MockProcessChecker
}

func (s *StagingTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.path = filepath.Join(s.dir, "default-config."+Extension)
	s.procs = &mocks.MockProcessChecker{}
}

func (s *StagingTestSuite) leave(pid int, age time.Duration) string {
	p := filesys.StagingPath(s.path, pid, 1, time.Now().UnixNano())
	s.Require().NoError(os.WriteFile(p, []byte("partial"), 0o600))
	mtime := time.Now().Add(-age)
	s.Require().NoError(os.Chtimes(p, mtime, mtime))
	return p
}

func (s *StagingTestSuite) TestStagingFiles() {
	s.Require().NoError(StorePath(s.path, exampleConfig{Name: "kept"}))
	older := s.leave(100, 2*time.Hour)
	newer := s.leave(200, time.Hour)
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "unrelated.txt"), nil, 0o600))

	files, err := StagingFiles(s.path)
	s.Require().NoError(err)
	s.Require().Len(files, 2)
	s.Equal(older, files[0].Path)
	s.Equal(100, files[0].PID)
	s.Equal(int64(len("partial")), files[0].Size)
	s.Equal(newer, files[1].Path)
	s.Equal(200, files[1].PID)
}

func (s *StagingTestSuite) TestStagingFilesMissingDirectory() {
	files, err := StagingFiles(filepath.Join(s.dir, "nope", "config."+Extension))
	s.Require().NoError(err)
	s.Empty(files)
}

func (s *StagingTestSuite) TestCleanStagingRemovesDeadWriters() {
	dead := s.leave(100, time.Hour)
	alive := s.leave(200, time.Hour)
	s.procs.On("Alive", 100).Return(false)
	s.procs.On("Alive", 200).Return(true)

	p := New[struct{}](WithProcessChecker[struct{}](s.procs))
	removed, err := p.CleanStaging(s.path)

	s.Require().NoError(err)
	s.Equal([]string{dead}, removed)
	s.NoFileExists(dead)
	s.FileExists(alive)
	s.procs.AssertExpectations(s.T())
}

func (s *StagingTestSuite) TestCleanStagingAggregatesErrors() {
	fsMock := &mocks.MockOsFS{}
	first := filesys.StagingPath(s.path, 100, 1, 1)
	second := filesys.StagingPath(s.path, 101, 1, 2)
	entries := s.dirEntries(first, second)
	fsMock.On("ReadDir", s.dir).Return(entries, nil)
	fsMock.On("Remove", mock.AnythingOfType("string")).Return(os.ErrPermission)
	s.procs.On("Alive", mock.AnythingOfType("int")).Return(false)

	p := New[struct{}](WithFS[struct{}](fsMock), WithProcessChecker[struct{}](s.procs))
	removed, err := p.CleanStaging(s.path)

	s.Empty(removed)
	s.ErrorIs(err, ErrWriteConfigurationFile)
	s.ErrorIs(err, os.ErrPermission)
	fsMock.AssertNumberOfCalls(s.T(), "Remove", 2)
}

// dirEntries creates the named files for real and returns their entries.
func (s *StagingTestSuite) dirEntries(paths ...string) []os.DirEntry {
	for _, p := range paths {
		s.Require().NoError(os.WriteFile(p, nil, 0o600))
	}
	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	return entries
}

func TestStagingSuite(t *testing.T) {
	suite.Run(t, new(StagingTestSuite))
}
