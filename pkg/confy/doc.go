// Package confy persists a typed configuration value in a per-user file.
//
// Given an application name, confy locates the platform configuration
// directory, reads or writes "<name>.<ext>" with the codec compiled into
// the build (TOML by default, YAML with -tags yaml_conf) and hands back a
// populated value of the caller's type.
//
// # Basic Usage
//
//	type Config struct {
//		Version int    `toml:"version" yaml:"version"`
//		APIKey  string `toml:"api_key" yaml:"api_key"`
//	}
//
//	cfg, err := confy.LoadOrDefault[Config]("my-app", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	cfg.Version++
//	if err := confy.Store("my-app", "", cfg); err != nil {
//		log.Fatal(err)
//	}
//
// An empty configuration name means "default-config". Use
// ConfigurationFilePath to show the user where the file lives, and the
// ...Path variants to work on an explicit path.
//
// # Defaults
//
// The default of a type is its zero value, unless the type (or a pointer
// to it) implements Defaulter. Decoding starts from the default, so keys
// missing from a file keep their default values.
//
// Load and LoadPath report a missing file as an ErrGeneralLoad error
// wrapping fs.ErrNotExist. LoadOrDefault returns the default instead and
// LoadOrCreate additionally writes it.
//
// # Atomic Writes
//
// Store never leaves a truncated or partially written file under the
// target name:
//
//  1. the parent directory is created
//  2. the value is encoded before any file is opened for writing
//  3. the bytes go to a sibling "<stem>.<pid>_<tid>_<nanos>" created with O_EXCL
//  4. the sibling is fsynced, closed and renamed over the target
//  5. the directory is fsynced
//
// If any step fails the target keeps its previous content. A crash
// between 3 and 4 leaves the sibling behind; StagingFiles lists such
// leftovers and CleanStaging removes those whose process is gone.
//
// # Error Handling
//
// Every error is a *Error whose Kind can be matched with errors.Is:
//   - ErrBadData: the file is not valid for the codec
//   - ErrDirectoryCreationFailed: the parent directory could not be created
//   - ErrGeneralLoad: the file could not be opened for reading
//   - ErrBadConfigDirectory: no usable directory, or a root path was given
//   - ErrSerialize: the value could not be encoded
//   - ErrWriteConfigurationFile: writing or renaming the staged file failed
//   - ErrReadConfigurationFile: the opened file could not be read
//   - ErrOpenConfigurationFile: the staging file could not be created
//
// The underlying cause stays reachable through errors.Unwrap.
//
// # Thread Safety
//
// No function holds package state. Concurrent Store calls on the same
// path all succeed; the last rename wins and the file is never empty.
package confy
