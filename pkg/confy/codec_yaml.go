//go:build yaml_conf

package confy

const (
	// ErrBadYamlData is ErrBadData for the YAML build.
	ErrBadYamlData = ErrBadData
	// ErrSerializeYamlError is ErrSerialize for the YAML build.
	ErrSerializeYamlError = ErrSerialize
)
