// Package app is the composition root of missionboard.
//
// Run loads the configuration (TOML file, MISSIONBOARD_* environment, then
// command-line overrides), opens the file logger, builds the GraphQL client
// and the fetch outcome store, and hands them to the TUI:
//
//	Run()
//	 ├─> Configure()          config.Load + flag overrides
//	 ├─> logging.New()        zap, file sink
//	 ├─> missions.NewClient() schema-validated GraphQL client
//	 ├─> state.Store{}        fetch outcome
//	 └─> ui.Run()             blocks; fetches on start and on "r"
//
// Fetch is the single fetch path shared by the TUI and Dump. It never
// polls and never retries: a failed fetch stays failed until the user asks
// for another one.
//
// Dump is the non-interactive counterpart of Run. It fetches once, applies
// the requested sort and filter through a viewstate.Controller and writes
// the result in the requested display mode.
package app
