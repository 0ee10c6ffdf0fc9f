//go:build toml_conf || (!yaml_conf && !no_default_codec)

package codec

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

const (
	// Name is the human readable name of the compiled-in format.
	Name = "TOML"
	// Extension is the file extension used for configuration files.
	Extension = "toml"
)

// Marshal encodes v as indented TOML.
func Marshal(v any) (data []byte, err error) {
	defer recoverEncode(&err)

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a whole TOML document into v.
func Unmarshal(data []byte, v any) error {
	_, err := toml.Decode(string(data), v)
	return err
}
