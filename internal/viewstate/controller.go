package viewstate

import (
	"fmt"

	"github.com/five82/missionboard/internal/missions"
)

// Controller holds the authoritative mission set, the view preferences and
// the displayed set derived from both. The zero value is an empty controller
// with default preferences.
//
// Controller is not safe for concurrent use; callers serialize access (the
// Bubble Tea update loop does).
type Controller struct {
	authoritative []missions.Mission
	prefs         Preferences
	displayed     []missions.Mission
}

// New returns an empty controller.
func New() *Controller {
	return &Controller{prefs: DefaultPreferences()}
}

// LoadAuthoritative replaces the authoritative set with a copy of records
// and resets the view to defaults.
func (c *Controller) LoadAuthoritative(records []missions.Mission) {
	c.authoritative = missions.CloneAll(records)
	c.apply(DefaultPreferences())
}

// SetDisplayMode changes the presentation only; the displayed set is left
// as is.
func (c *Controller) SetDisplayMode(mode DisplayMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w %d", ErrInvalidMode, int(mode))
	}
	c.prefs.Mode = mode
	return nil
}

// SetSortKey sets the sort field and re-derives from the authoritative set.
func (c *Controller) SetSortKey(key Field) error {
	if !key.Valid() {
		return fmt.Errorf("sort by %v: %w", key, ErrInvalidField)
	}
	next := c.prefs
	next.Sort = key
	c.apply(next)
	return nil
}

// SetFilter sets the filter and re-derives from the authoritative set.
func (c *Controller) SetFilter(field Field, query string) error {
	if !field.Valid() {
		return fmt.Errorf("filter by %v: %w", field, ErrInvalidField)
	}
	next := c.prefs
	next.Filter = Filter{Field: field, Query: query}
	c.apply(next)
	return nil
}

// ResetView restores default preferences without refetching.
func (c *Controller) ResetView() {
	c.apply(DefaultPreferences())
}

// DisplayedSet returns a copy of the filtered and sorted missions.
func (c *Controller) DisplayedSet() []missions.Mission {
	return missions.CloneAll(c.displayedOrEmpty())
}

// Authoritative returns a copy of the last loaded mission set.
func (c *Controller) Authoritative() []missions.Mission {
	return missions.CloneAll(c.authoritative)
}

// Preferences returns the current view preferences.
func (c *Controller) Preferences() Preferences {
	return c.prefs
}

// Len returns the size of the displayed set.
func (c *Controller) Len() int {
	return len(c.displayed)
}

// Total returns the size of the authoritative set.
func (c *Controller) Total() int {
	return len(c.authoritative)
}

// apply derives the displayed set for next, then swaps both in together.
func (c *Controller) apply(next Preferences) {
	displayed := Derive(c.authoritative, next)
	c.prefs, c.displayed = next, displayed
}

func (c *Controller) displayedOrEmpty() []missions.Mission {
	if c.displayed == nil {
		return []missions.Mission{}
	}
	return c.displayed
}
