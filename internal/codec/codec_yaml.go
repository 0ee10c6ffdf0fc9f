//go:build yaml_conf

package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const (
	// Name is the human readable name of the compiled-in format.
	Name = "YAML"
	// Extension is the file extension used for configuration files.
	Extension = "yml"
)

// Marshal encodes v as YAML indented by two spaces.
func Marshal(v any) (data []byte, err error) {
	defer recoverEncode(&err)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a whole YAML document into v.
func Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
