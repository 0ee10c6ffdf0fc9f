//go:build toml_conf && yaml_conf

package codec

// Exactly one codec may be compiled in. Drop either toml_conf or yaml_conf.
var _ = bothTomlConfAndYamlConfSelected
