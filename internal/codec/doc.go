// Package codec holds the single textual format compiled into confy.
//
// The format is chosen with build tags:
//
//	(no tags)                 TOML, files end in .toml
//	-tags toml_conf           TOML
//	-tags yaml_conf           YAML, files end in .yml
//	-tags toml_conf,yaml_conf does not build
//	-tags no_default_codec    does not build unless toml_conf or yaml_conf is also set
//
// Every build exposes the same API: Name, Extension, Marshal and Unmarshal.
package codec
