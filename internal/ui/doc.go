// Package ui provides the Bubble Tea terminal interface for missionboard.
//
// # Architecture Overview
//
// Model owns a viewstate.Controller and mirrors the fetch outcome held in
// state.Store. Every controller operation happens inside Update, so the
// controller needs no locking of its own. The only asynchronous step is the
// refresh command, which runs Options.Refresh off the event loop and reports
// back with a fetchDoneMsg. A successful outcome with a new generation is
// passed to Controller.LoadAuthoritative, which also resets the view.
//
// # Presentations
//
// The content area is replaced wholesale while loading ("LOADING..." with a
// spinner), after a failed fetch ("ERROR!" with the cause) and when the
// displayed set is empty ("NO DATA"). Otherwise it shows the active mode:
//
//   - card: one bordered card per mission, body rendered with glamour
//   - table: a bubbles/table grid over the fixed column set
//   - raw: the displayed set as tab-indented JSON
//
// # Keys
//
//	1/2/3 m     card/table/raw, cycle mode
//	s           cycle sort field (none → id → name)
//	f           cycle filter field, clearing the query
//	/           edit the filter query (enter applies, esc cancels)
//	x           reset the view to defaults
//	r           refetch
//	y           copy the displayed set as JSON
//	j/k g/G     scroll
//	T           cycle theme
//	h/?         help
//	e, ctrl+c   quit
package ui
