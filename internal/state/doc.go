// Package state tracks the outcome of mission fetches for missionboard.
//
// # Overview
//
// The fetch runs in a Bubble Tea command goroutine while the UI reads from
// the update loop. Store sits between the two:
//
//	Fetch command:                UI update loop:
//	┌────────────────────┐        ┌────────────────────┐
//	│ gen := Begin()     │        │                    │
//	│ FetchMissions()    │        │                    │
//	│ Complete(gen, res) │───────→│ Snapshot()         │
//	│   or Fail(gen, err)│ (mutex)│   render phase     │
//	└────────────────────┘        └────────────────────┘
//
// # Phases
//
//	Idle ──Begin──> Pending ──Complete──> Succeeded
//	                   │                      │
//	                   └──Fail──> Failed <────┘ (next Begin)
//
// Begin refuses to start a second fetch while one is pending
// (ErrFetchPending). Every Begin bumps a generation counter; Complete and
// Fail ignore generations that are no longer current.
//
// # Error Handling
//
// A failed fetch keeps the last good result in the snapshot, but the UI
// shows a full error presentation rather than stale data underneath.
// Snapshot.Err wraps the cause in *FetchError.
//
// # Defensive Copying
//
// Complete and Snapshot clone the mission slice and Snapshot copies the
// error value, so neither side can mutate what the other holds.
//
// The zero Store is ready to use.
package state
