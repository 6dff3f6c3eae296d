package missions

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestManufacturers_UnmarshalJSONAcceptsStringListAndNull(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Manufacturers
	}{
		{"list", `["Orbital ATK","SpaceX"]`, Manufacturers{"Orbital ATK", "SpaceX"}},
		{"single", `"SES"`, Manufacturers{"SES"}},
		{"blank string", `"  "`, nil},
		{"null", `null`, nil},
		{"null entries skipped", `["Boeing",null]`, Manufacturers{"Boeing"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Manufacturers
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tc.in, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Unmarshal(%s) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestManufacturers_UnmarshalJSONRejectsObjects(t *testing.T) {
	var got Manufacturers
	if err := json.Unmarshal([]byte(`{"a":1}`), &got); err == nil {
		t.Fatalf("expected error for object payload, got %#v", got)
	}
}

func TestManufacturers_MarshalJSONAlwaysList(t *testing.T) {
	out, err := json.Marshal(Mission{ID: "9D1B7E0"})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	list, ok := decoded["manufacturers"].([]any)
	if !ok || len(list) != 0 {
		t.Fatalf("manufacturers = %#v, want empty list", decoded["manufacturers"])
	}
}

func TestManufacturers_UnmarshalYAML(t *testing.T) {
	var fixtures []Mission
	err := yaml.Unmarshal([]byte(`
- id: F3364BF
  name: Iridium NEXT
  manufacturers: Orbital ATK
- id: EE86F74
  name: Commercial Resupply Services
  manufacturers: [SpaceX, NASA]
- id: 6C42550
  name: SES
`), &fixtures)
	if err != nil {
		t.Fatalf("yaml.Unmarshal returned error: %v", err)
	}
	if len(fixtures) != 3 {
		t.Fatalf("decoded %d fixtures, want 3", len(fixtures))
	}
	if got := fixtures[0].Manufacturers; !reflect.DeepEqual(got, Manufacturers{"Orbital ATK"}) {
		t.Fatalf("fixture[0].Manufacturers = %#v", got)
	}
	if got := fixtures[1].Manufacturers.String(); got != "SpaceX, NASA" {
		t.Fatalf("fixture[1].Manufacturers.String() = %q", got)
	}
	if fixtures[2].Manufacturers != nil {
		t.Fatalf("fixture[2].Manufacturers = %#v, want nil", fixtures[2].Manufacturers)
	}
}

func TestQuery_Variables(t *testing.T) {
	if got := (Query{}).Variables(); len(got) != 0 {
		t.Fatalf("empty query variables = %#v, want empty", got)
	}
	limit := 5
	got := Query{Limit: &limit, Find: &Find{Field: " name ", Value: "Thaicom"}}.Variables()
	want := map[string]any{
		"limit": 5,
		"find":  map[string]any{"name": "Thaicom"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Variables() = %#v, want %#v", got, want)
	}
}

func TestValidateFind(t *testing.T) {
	if err := ValidateFind(nil); err != nil {
		t.Fatalf("ValidateFind(nil) = %v, want nil", err)
	}
	for _, field := range []string{"id", "name", "manufacturer", "payload_id"} {
		if err := ValidateFind(&Find{Field: field, Value: "x"}); err != nil {
			t.Fatalf("ValidateFind(%q) = %v, want nil", field, err)
		}
	}
	if err := ValidateFind(&Find{Field: "description"}); err == nil {
		t.Fatalf("ValidateFind(description) = nil, want ErrInvalidFind")
	}
}

func TestMissionClone_DoesNotShareManufacturers(t *testing.T) {
	orig := Mission{ID: "a", Manufacturers: Manufacturers{"SSL", "Boeing"}}
	cp := orig.Clone()
	cp.Manufacturers[0] = "mutated"
	if want := (Manufacturers{"SSL", "Boeing"}); !reflect.DeepEqual(orig.Manufacturers, want) {
		t.Fatalf("original manufacturers = %v, want %v", orig.Manufacturers, want)
	}

	if got := (Mission{}).Clone().Manufacturers; got != nil {
		t.Fatalf("Clone of nil manufacturers = %#v, want nil", got)
	}
	if got := CloneAll(nil); got != nil {
		t.Fatalf("CloneAll(nil) = %#v, want nil", got)
	}

	all := []Mission{orig}
	copies := CloneAll(all)
	copies[0].Manufacturers[1] = "mutated"
	if got := all[0].Manufacturers[1]; got != "Boeing" {
		t.Fatalf("CloneAll shared manufacturers: got %q want Boeing", got)
	}
}
