// Package viewstate reconciles a fetched mission set with the user's view
// selections: display mode, sort key and filter.
//
// The displayed set is always Derive(authoritative, preferences): filter
// first, then a stable lexicographic sort, computed from the authoritative
// set on every change. Nothing is patched incrementally, so the order in
// which sort and filter were chosen never matters.
//
//	LoadAuthoritative ──┐
//	SetSortKey ─────────┤
//	SetFilter ──────────┼──> Derive(authoritative, prefs) ──> DisplayedSet
//	ResetView ──────────┘
//	SetDisplayMode ─────────> prefs.Mode only
package viewstate
