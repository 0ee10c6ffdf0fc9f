//go:build toml_conf || (!yaml_conf && !no_default_codec)

package confy

const (
	// ErrBadTomlData is ErrBadData for the TOML build.
	ErrBadTomlData = ErrBadData
	// ErrSerializeTomlError is ErrSerialize for the TOML build.
	ErrSerializeTomlError = ErrSerialize
)
