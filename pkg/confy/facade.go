package confy

// Load reads the configuration of app. An empty name means DefaultConfigName.
func Load[T any](app, name string) (T, error) {
	return New[T]().Load(app, name)
}

// LoadPath reads the configuration stored at path.
func LoadPath[T any](path string) (T, error) {
	return New[T]().LoadPath(path)
}

// LoadOrDefault reads the configuration of app, or returns the default
// value of T when the file does not exist yet.
func LoadOrDefault[T any](app, name string) (T, error) {
	return New[T]().LoadOrDefault(app, name)
}

// LoadPathOrDefault reads the configuration at path, or returns the
// default value of T when the file does not exist yet.
func LoadPathOrDefault[T any](path string) (T, error) {
	return New[T]().LoadPathOrDefault(path)
}

// LoadOrCreate reads the configuration of app, writing the default value
// first when the file does not exist yet.
func LoadOrCreate[T any](app, name string) (T, error) {
	return New[T]().LoadOrCreate(app, name)
}

// LoadPathOrCreate reads the configuration at path, writing the default
// value first when the file does not exist yet.
func LoadPathOrCreate[T any](path string) (T, error) {
	return New[T]().LoadPathOrCreate(path)
}

// Store atomically replaces the configuration of app with v.
func Store[T any](app, name string, v T) error {
	return New[T]().Store(app, name, v)
}

// StorePath atomically replaces the file at path with the encoding of v.
func StorePath[T any](path string, v T) error {
	return New[T]().StorePath(path, v)
}

// ConfigurationFilePath returns the path Load and Store use for app and
// name, so it can be shown to a user.
func ConfigurationFilePath(app, name string) (string, error) {
	return New[struct{}]().ConfigurationFilePath(app, name)
}
