// Package config holds the settings of the confy command itself.
//
// The settings are persisted with pkg/confy, under the application name
// "confy" and the configuration name "settings". On Linux with the TOML
// codec that is ~/.config/confy/settings.toml:
//
//	log_level = "info"    # debug, info, warn or error
//	color = "auto"        # auto, always or never
//	show_staging = true   # list staging leftovers under "confy show"
//
// A missing file yields the defaults above and is not created. Keys
// absent from the file keep their default values.
//
// # Log level precedence
//
// The --log-level flag wins over CONFY_LOG_LEVEL, which wins over the
// stored log_level.
package config
