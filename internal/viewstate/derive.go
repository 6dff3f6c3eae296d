package viewstate

import (
	"slices"
	"strings"

	"github.com/five82/missionboard/internal/missions"
)

// Derive computes the displayed set: records filtered by prefs.Filter, then
// stably sorted by prefs.Sort. The input is never modified and the result
// never aliases it.
func Derive(records []missions.Mission, prefs Preferences) []missions.Mission {
	out := make([]missions.Mission, 0, len(records))
	if prefs.Filter.Active() {
		needle := strings.ToLower(prefs.Filter.Query)
		for _, m := range records {
			if strings.Contains(strings.ToLower(fieldValue(m, prefs.Filter.Field)), needle) {
				out = append(out, m)
			}
		}
	} else {
		out = append(out, records...)
	}

	if prefs.Sort != FieldNone {
		key := prefs.Sort
		slices.SortStableFunc(out, func(a, b missions.Mission) int {
			return strings.Compare(fieldValue(a, key), fieldValue(b, key))
		})
	}
	return out
}

func fieldValue(m missions.Mission, f Field) string {
	switch f {
	case FieldID:
		return m.ID
	case FieldName:
		return m.Name
	}
	return ""
}
