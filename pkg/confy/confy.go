package confy

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lc/confy/internal/appdir"
	"github.com/lc/confy/internal/codec"
	"github.com/lc/confy/internal/filesys"
	"github.com/lc/confy/internal/process"
)

const (
	// DefaultConfigName is the file stem used when no configuration name is given.
	DefaultConfigName = "default-config"
	// Extension is the file extension of the compiled-in codec ("toml" or "yml").
	Extension = codec.Extension
	// DefaultFileMode is the mode given to newly written configuration files.
	DefaultFileMode os.FileMode = 0o644

	dirMode os.FileMode = 0o755
)

// Defaulter is implemented by configuration types whose default is not
// their zero value. Either T or *T may implement it.
type Defaulter[T any] interface {
	Default() T
}

// Provider reads and writes configuration values of type T. The zero
// configuration (New[T]() with no options) uses the local filesystem and
// the platform configuration directory. A Provider holds no mutable
// state and is safe for concurrent use.
type Provider[T any] struct {
	fs        filesys.FileOps
	log       *zap.Logger
	mode      os.FileMode
	configDir func(app string) (string, error)
	now       func() time.Time
	procs     process.Checker
}

// Option configures a Provider at construction time.
type Option[T any] func(*Provider[T])

// New constructs a Provider[T] and applies all given options.
func New[T any](opts ...Option[T]) *Provider[T] {
	p := &Provider[T]{
		fs:        filesys.OS(),
		log:       zap.NewNop(),
		mode:      DefaultFileMode,
		configDir: appdir.ConfigDir,
		now:       time.Now,
		procs:     process.DefaultChecker{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithFS replaces the filesystem used for all reads and writes.
func WithFS[T any](fsys filesys.FileOps) Option[T] {
	return func(p *Provider[T]) {
		if fsys != nil {
			p.fs = fsys
		}
	}
}

// WithLogger routes debug tracing and non-fatal warnings to l.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(p *Provider[T]) {
		if l != nil {
			p.log = l
		}
	}
}

// WithFileMode sets the permissions of newly written files.
func WithFileMode[T any](mode os.FileMode) Option[T] {
	return func(p *Provider[T]) {
		p.mode = mode
	}
}

// WithConfigDirFunc replaces the platform configuration directory lookup.
func WithConfigDirFunc[T any](fn func(app string) (string, error)) Option[T] {
	return func(p *Provider[T]) {
		if fn != nil {
			p.configDir = fn
		}
	}
}

// WithClock replaces the wall clock used for staging names.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(p *Provider[T]) {
		if now != nil {
			p.now = now
		}
	}
}

// WithProcessChecker replaces the liveness check used by CleanStaging.
func WithProcessChecker[T any](pc process.Checker) Option[T] {
	return func(p *Provider[T]) {
		if pc != nil {
			p.procs = pc
		}
	}
}

// ConfigurationFilePath returns the file used by Load and Store for app
// and the configuration name. An empty name means DefaultConfigName.
func (p *Provider[T]) ConfigurationFilePath(app, name string) (string, error) {
	if name == "" {
		name = DefaultConfigName
	}
	dir, err := p.configDir(app)
	if err != nil {
		return "", badConfigDirectory(err.Error())
	}
	return appdir.FilePath(dir, name, Extension), nil
}

// Load reads the configuration of app from the platform configuration
// directory. A missing file is an ErrGeneralLoad error; see LoadOrDefault.
func (p *Provider[T]) Load(app, name string) (T, error) {
	path, err := p.ConfigurationFilePath(app, name)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.LoadPath(path)
}

// LoadPath reads the configuration stored at path. Keys absent from the
// file keep their default values.
func (p *Provider[T]) LoadPath(path string) (T, error) {
	return p.read(path)
}

// LoadOrDefault is Load, except that a missing file yields the default value.
func (p *Provider[T]) LoadOrDefault(app, name string) (T, error) {
	path, err := p.ConfigurationFilePath(app, name)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.LoadPathOrDefault(path)
}

// LoadPathOrDefault is LoadPath, except that a missing file yields the
// default value. Nothing is written.
func (p *Provider[T]) LoadPathOrDefault(path string) (T, error) {
	v, err := p.read(path)
	if isNotFound(err) {
		return defaultValue[T](), nil
	}
	return v, err
}

// LoadOrCreate is Load, except that a missing file is created holding
// the default value, which is then returned.
func (p *Provider[T]) LoadOrCreate(app, name string) (T, error) {
	path, err := p.ConfigurationFilePath(app, name)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.LoadPathOrCreate(path)
}

// LoadPathOrCreate is LoadPath, except that a missing file is created
// holding the default value, which is then returned.
func (p *Provider[T]) LoadPathOrCreate(path string) (T, error) {
	v, err := p.read(path)
	if !isNotFound(err) {
		return v, err
	}
	v = defaultValue[T]()
	if err := p.write(path, v); err != nil {
		var zero T
		return zero, err
	}
	p.log.Debug("created configuration file with defaults", zap.String("path", path))
	return v, nil
}

// Store atomically replaces the configuration of app with v, creating
// the directory and file as needed.
func (p *Provider[T]) Store(app, name string, v T) error {
	path, err := p.ConfigurationFilePath(app, name)
	if err != nil {
		return err
	}
	return p.StorePath(path, v)
}

// StorePath atomically replaces the file at path with the encoding of v.
// On error the file is left exactly as it was, or absent if it was absent.
func (p *Provider[T]) StorePath(path string, v T) error {
	return p.write(path, v)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrGeneralLoad) && errors.Is(err, fs.ErrNotExist)
}

func defaultValue[T any]() T {
	var v T
	if d, ok := any(v).(Defaulter[T]); ok {
		return d.Default()
	}
	if d, ok := any(&v).(Defaulter[T]); ok {
		return d.Default()
	}
	return v
}
