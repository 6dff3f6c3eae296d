package viewstate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidField reports a sort or filter field outside {none, id, name}.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidMode reports a display mode outside {card, table, raw}.
	ErrInvalidMode = errors.New("invalid display mode")
)

// DisplayMode selects how the renderer presents the displayed set.
type DisplayMode int

const (
	ModeCard DisplayMode = iota
	ModeTable
	ModeRaw
)

var modeNames = [...]string{"card", "table", "raw"}

func (m DisplayMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the known modes.
func (m DisplayMode) Valid() bool {
	return m >= ModeCard && m <= ModeRaw
}

// Next cycles card → table → raw → card.
func (m DisplayMode) Next() DisplayMode {
	if !m.Valid() {
		return ModeCard
	}
	return (m + 1) % DisplayMode(len(modeNames))
}

// ParseDisplayMode maps user input to a DisplayMode. "grid" and "json" are
// accepted as aliases of table and raw.
func ParseDisplayMode(value string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "card", "cards":
		return ModeCard, nil
	case "table", "grid":
		return ModeTable, nil
	case "raw", "json":
		return ModeRaw, nil
	}
	return ModeCard, fmt.Errorf("%w %q", ErrInvalidMode, value)
}

// Field names a mission field usable for sorting and filtering.
type Field int

const (
	FieldNone Field = iota
	FieldID
	FieldName
)

func (f Field) String() string {
	switch f {
	case FieldNone:
		return "none"
	case FieldID:
		return "id"
	case FieldName:
		return "name"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Label is the short title-case label used in headers.
func (f Field) Label() string {
	switch f {
	case FieldID:
		return "ID"
	case FieldName:
		return "Name"
	}
	return "None"
}

// Valid reports whether f is none, id or name.
func (f Field) Valid() bool {
	return f >= FieldNone && f <= FieldName
}

// Next cycles none → id → name → none.
func (f Field) Next() Field {
	switch f {
	case FieldNone:
		return FieldID
	case FieldID:
		return FieldName
	}
	return FieldNone
}

// ParseField maps user input to a Field. Only id and name are sortable or
// filterable; anything else yields ErrInvalidField.
func ParseField(value string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return FieldNone, nil
	case "id":
		return FieldID, nil
	case "name":
		return FieldName, nil
	}
	return FieldNone, fmt.Errorf("%w %q: want id or name", ErrInvalidField, value)
}

// Filter keeps missions whose Field contains Query, ignoring case.
type Filter struct {
	Field Field
	Query string
}

// Active reports whether the filter narrows anything.
func (f Filter) Active() bool {
	return f.Field != FieldNone
}

// Preferences are the user-controlled view selections.
type Preferences struct {
	Mode   DisplayMode
	Sort   Field
	Filter Filter
}

// DefaultPreferences returns card mode with no sort and no filter.
func DefaultPreferences() Preferences {
	return Preferences{Mode: ModeCard, Sort: FieldNone, Filter: Filter{Field: FieldNone}}
}

// IsDefault reports whether p equals DefaultPreferences().
func (p Preferences) IsDefault() bool {
	return p == DefaultPreferences()
}
