package appdir

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/suite"
)

type AppDirTestSuite struct {
	suite.Suite
	root string
}

func (s *AppDirTestSuite) SetupTest() {
	s.root = s.T().TempDir()
}

func (s *AppDirTestSuite) base() (string, error) { return s.root, nil }

func (s *AppDirTestSuite) TestConfigDir() {
	testCases := []struct {
		name     string
		goos     string
		app      string
		expected string
	}{
		{
			name:     "linux lower-cases and strips spaces",
			goos:     "linux",
			app:      "My Cool App",
			expected: filepath.Join(s.root, "mycoolapp"),
		},
		{
			name:     "freebsd follows xdg rules",
			goos:     "freebsd",
			app:      "Tool",
			expected: filepath.Join(s.root, "tool"),
		},
		{
			name:     "darwin keeps the name",
			goos:     "darwin",
			app:      "My App",
			expected: filepath.Join(s.root, "My App"),
		},
		{
			name:     "windows adds config directory",
			goos:     "windows",
			app:      "My App",
			expected: filepath.Join(s.root, "My App", "config"),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			dir, err := configDir(tc.goos, s.base, tc.app)
			s.Require().NoError(err)
			s.Equal(tc.expected, dir)
		})
	}
}

func (s *AppDirTestSuite) TestEmptyAppName() {
	for _, app := range []string{"", "   "} {
		_, err := configDir("linux", s.base, app)
		s.ErrorIs(err, ErrEmptyAppName)
	}
}

func (s *AppDirTestSuite) TestNoHome() {
	_, err := configDir("linux", func() (string, error) {
		return "", errors.New("$HOME is not defined")
	}, "app")
	s.ErrorIs(err, ErrNoHome)
	s.EqualError(err, "could not determine home directory path")
}

func (s *AppDirTestSuite) TestInvalidUnicode() {
	_, err := configDir("darwin", func() (string, error) {
		return "/tmp/\xff\xfe", nil
	}, "app")

	var uerr *InvalidUnicodeError
	s.Require().ErrorAs(err, &uerr)
	s.Contains(err.Error(), "is not valid Unicode")
}

func (s *AppDirTestSuite) TestConfigDirHonoursXDG() {
	if runtime.GOOS != "linux" {
		s.T().Skip("XDG_CONFIG_HOME is only consulted on Linux")
	}
	s.T().Setenv("XDG_CONFIG_HOME", s.root)

	dir, err := ConfigDir("Example App")
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.root, "exampleapp"), dir)
}

func (s *AppDirTestSuite) TestFilePath() {
	s.Equal(filepath.Join("base", "default-config.toml"), FilePath("base", "default-config", "toml"))
}

func TestAppDirSuite(t *testing.T) {
	suite.Run(t, new(AppDirTestSuite))
}
