package missions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mission mirrors a single entry of missionsResult.data.
type Mission struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Manufacturers Manufacturers `json:"manufacturers" yaml:"manufacturers"`
	Description   string        `json:"description" yaml:"description"`
	Twitter       string        `json:"twitter" yaml:"twitter"`
	Website       string        `json:"website" yaml:"website"`
	Wikipedia     string        `json:"wikipedia" yaml:"wikipedia"`
}

// Clone returns a copy of m that shares no memory with it.
func (m Mission) Clone() Mission {
	if m.Manufacturers != nil {
		m.Manufacturers = slices.Clone(m.Manufacturers)
	}
	return m
}

// CloneAll deep-copies records. A nil input stays nil.
func CloneAll(records []Mission) []Mission {
	if records == nil {
		return nil
	}
	out := make([]Mission, len(records))
	for i, m := range records {
		out[i] = m.Clone()
	}
	return out
}

// Result is the decoded payload of a MissionsQuery.
type Result struct {
	Data       []Mission `json:"data"`
	TotalCount int       `json:"totalCount"`
}

// Manufacturers accepts either a single string or a list of strings on the
// wire and always encodes as a list.
type Manufacturers []string

// UnmarshalJSON implements json.Unmarshaler.
func (m *Manufacturers) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = nil
		return nil
	}
	if trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return fmt.Errorf("decode manufacturer: %w", err)
		}
		*m = fromSingle(single)
		return nil
	}
	var list []*string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return fmt.Errorf("decode manufacturers: %w", err)
	}
	out := make(Manufacturers, 0, len(list))
	for _, entry := range list {
		if entry == nil {
			continue
		}
		out = append(out, *entry)
	}
	*m = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m Manufacturers) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(m))
}

// UnmarshalYAML implements yaml.Unmarshaler so fixtures can use either form.
func (m *Manufacturers) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*m = nil
			return nil
		}
		*m = fromSingle(value.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return fmt.Errorf("decode manufacturers: %w", err)
		}
		*m = list
		return nil
	default:
		return fmt.Errorf("manufacturers: unsupported yaml node at line %d", value.Line)
	}
}

// String joins the manufacturers for display.
func (m Manufacturers) String() string {
	return strings.Join(m, ", ")
}

func fromSingle(value string) Manufacturers {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return Manufacturers{value}
}

// Query carries the variables of a MissionsQuery. Nil fields are omitted.
type Query struct {
	Limit *int
	Find  *Find
}

// Find narrows the query to missions whose Field matches Value. Field must
// name a field of the MissionsFind input type.
type Find struct {
	Field string
	Value string
}

// Variables returns the GraphQL variables map for the query.
func (q Query) Variables() map[string]any {
	vars := map[string]any{}
	if q.Limit != nil {
		vars["limit"] = *q.Limit
	}
	if q.Find != nil {
		vars["find"] = map[string]any{strings.TrimSpace(q.Find.Field): q.Find.Value}
	}
	return vars
}
