// Package appdir maps an application name to its per-user configuration
// directory. Nothing here touches the filesystem.
package appdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmptyAppName is returned for an empty application name.
	ErrEmptyAppName = errors.New("application name must not be empty")
	// ErrNoHome is returned when the user configuration base cannot be determined.
	ErrNoHome = errors.New("could not determine home directory path")
)

// InvalidUnicodeError is returned when the derived directory is not valid UTF-8.
type InvalidUnicodeError struct {
	Dir string
}

func (e *InvalidUnicodeError) Error() string {
	return fmt.Sprintf("%q is not valid Unicode", e.Dir)
}

// ConfigDir returns the configuration directory for app following platform
// conventions:
//   - Linux and other XDG systems: $XDG_CONFIG_HOME/<app> or $HOME/.config/<app>,
//     with <app> lower-cased and whitespace removed
//   - macOS: $HOME/Library/Application Support/<app>
//   - Windows: %AppData%\<app>\config
func ConfigDir(app string) (string, error) {
	return configDir(runtime.GOOS, os.UserConfigDir, app)
}

func configDir(goos string, base func() (string, error), app string) (string, error) {
	if strings.TrimSpace(app) == "" {
		return "", ErrEmptyAppName
	}
	root, err := base()
	if err != nil || root == "" {
		return "", ErrNoHome
	}

	var dir string
	switch goos {
	case "windows":
		dir = filepath.Join(root, app, "config")
	case "darwin", "ios":
		dir = filepath.Join(root, app)
	default:
		dir = filepath.Join(root, projectName(app))
	}

	if !utf8.ValidString(dir) {
		return "", &InvalidUnicodeError{Dir: dir}
	}
	return dir, nil
}

// FilePath joins dir with "<name>.<ext>".
func FilePath(dir, name, ext string) string {
	return filepath.Join(dir, name+"."+ext)
}

func projectName(app string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, app)
}
