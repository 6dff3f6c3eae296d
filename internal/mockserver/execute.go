package mockserver

import (
	"fmt"
	"math"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/five82/missionboard/internal/missions"
)

// execute resolves a validated query selection against the fixtures. Only
// missionsResult and __typename exist on Query.
func (s *Server) execute(set ast.SelectionSet, vars map[string]any) (map[string]any, error) {
	out := map[string]any{}
	for _, field := range collectFields(set) {
		switch field.Name {
		case "__typename":
			out[field.Alias] = "Query"
		case "missionsResult":
			args := field.ArgumentMap(vars)
			page, total, err := s.query(args)
			if err != nil {
				return nil, err
			}
			out[field.Alias] = projectResult(field.SelectionSet, page, total)
		default:
			return nil, fmt.Errorf("field %q is not served by the mock", field.Name)
		}
	}
	return out, nil
}

// query applies find, then offset and limit. total counts every match.
func (s *Server) query(args map[string]any) ([]Fixture, int, error) {
	find, _ := args["find"].(map[string]any)
	matched := make([]Fixture, 0, len(s.fixtures))
	for _, f := range s.fixtures {
		if matches(f, find) {
			matched = append(matched, f)
		}
	}
	total := len(matched)

	offset, err := intArg(args, "offset")
	if err != nil {
		return nil, 0, err
	}
	if offset > 0 {
		matched = matched[min(offset, len(matched)):]
	}
	limit, err := intArg(args, "limit")
	if err != nil {
		return nil, 0, err
	}
	// A zero or missing limit returns everything, as the live API does.
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

// matches applies every non-null find entry as a case-insensitive
// substring test.
func matches(f Fixture, find map[string]any) bool {
	for key, raw := range find {
		if raw == nil {
			continue
		}
		needle := strings.ToLower(fmt.Sprint(raw))
		var candidates []string
		switch key {
		case "id":
			candidates = []string{f.ID}
		case "name":
			candidates = []string{f.Name}
		case "manufacturer":
			candidates = f.Manufacturers
		case "payload_id":
			candidates = f.PayloadIDs
		}
		if !anyContains(candidates, needle) {
			return false
		}
	}
	return true
}

func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func intArg(args map[string]any, name string) (int, error) {
	switch v := args[name].(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("argument %q must be an integer, got %v", name, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("argument %q has unsupported type %T", name, v)
	}
}

func projectResult(set ast.SelectionSet, page []Fixture, total int) map[string]any {
	out := map[string]any{}
	for _, field := range collectFields(set) {
		switch field.Name {
		case "__typename":
			out[field.Alias] = "MissionResult"
		case "result":
			out[field.Alias] = projectCount(field.SelectionSet, total)
		case "data":
			list := make([]map[string]any, 0, len(page))
			for _, f := range page {
				list = append(list, projectMission(field.SelectionSet, f.Mission))
			}
			out[field.Alias] = list
		}
	}
	return out
}

func projectCount(set ast.SelectionSet, total int) map[string]any {
	out := map[string]any{}
	for _, field := range collectFields(set) {
		switch field.Name {
		case "__typename":
			out[field.Alias] = "Result"
		case "totalCount":
			out[field.Alias] = total
		}
	}
	return out
}

func projectMission(set ast.SelectionSet, m missions.Mission) map[string]any {
	out := map[string]any{}
	for _, field := range collectFields(set) {
		var value any
		switch field.Name {
		case "__typename":
			value = "Mission"
		case "id":
			value = m.ID
		case "name":
			value = m.Name
		case "description":
			value = m.Description
		case "manufacturers":
			value = m.Manufacturers
		case "twitter":
			value = nullable(m.Twitter)
		case "website":
			value = nullable(m.Website)
		case "wikipedia":
			value = nullable(m.Wikipedia)
		default:
			continue
		}
		out[field.Alias] = value
	}
	return out
}

// nullable maps missing links to JSON null like the live API.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// collectFields flattens fragments into the fields they select.
func collectFields(set ast.SelectionSet) []*ast.Field {
	var fields []*ast.Field
	for _, sel := range set {
		switch sel := sel.(type) {
		case *ast.Field:
			fields = append(fields, sel)
		case *ast.InlineFragment:
			fields = append(fields, collectFields(sel.SelectionSet)...)
		case *ast.FragmentSpread:
			if sel.Definition != nil {
				fields = append(fields, collectFields(sel.Definition.SelectionSet)...)
			}
		}
	}
	return fields
}
