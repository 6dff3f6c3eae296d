// Package config loads missionboard's configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (Default)
//  2. The TOML file at the given path, or ~/.config/missionboard/config.toml
//  3. MISSIONBOARD_* environment variables
//
// Command-line flags are applied by the caller on top of the result.
// A missing config file is not an error.
//
// # TOML Format
//
//	endpoint = "https://spacex-production.up.railway.app/"
//	limit = 50                # omit or 0 for no limit
//	theme = "Nightfox"        # Nightfox, Kanagawa or Slate
//	log_file = "~/.local/state/missionboard/missionboard.log"
//	timeout = "10s"
//
// # Environment
//
//	MISSIONBOARD_ENDPOINT, MISSIONBOARD_LIMIT, MISSIONBOARD_THEME,
//	MISSIONBOARD_LOG_FILE, MISSIONBOARD_TIMEOUT
//
// Tilde expansion is performed on the config path and log_file.
package config
