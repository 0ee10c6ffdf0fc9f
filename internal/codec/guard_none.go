//go:build no_default_codec && !toml_conf && !yaml_conf

package codec

// With the default codec disabled, one of toml_conf or yaml_conf is required.
var _ = noCodecSelectedEnableTomlConfOrYamlConf
