// SPDX-License-Identifier: MPL-2.0

// Package config loads clisort settings from CUE files through Viper.
//
// Lookup order: the --config flag, ./clisort.cue, then config.cue in the
// user config directory ($XDG_CONFIG_HOME/clisort on Linux,
// ~/Library/Application Support/clisort on macOS, %APPDATA%\clisort on
// Windows). Files are validated against the embedded config_schema.cue.
package config
