// Package config loads hiremap's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/hiremap/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	source = "~/.local/share/hiremap/consolidated.json"
//	start_tab = "hiring"
//	log_file = "~/.local/state/hiremap/hiremap.log"
//	watch = true
//	request_timeout = 10
//
// Every field is optional. source may be a local JSON or YAML file or an
// http(s) URL; local paths get tilde expansion and are made absolute.
// request_timeout is in seconds and only applies to URL sources.
//
// Missing config files are not an error. Open, read, and parse failures are
// returned wrapped with the step that failed.
package config
