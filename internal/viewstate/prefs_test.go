package viewstate

import (
	"errors"
	"testing"

	"github.com/five82/missionboard/internal/missions"
)

func TestParseField(t *testing.T) {
	cases := []struct {
		in   string
		want Field
	}{
		{"", FieldNone},
		{"none", FieldNone},
		{" ID ", FieldID},
		{"Name", FieldName},
	}
	for _, tc := range cases {
		got, err := ParseField(tc.in)
		if err != nil {
			t.Fatalf("ParseField(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseField(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"description", "manufacturers", "wikipedia"} {
		if _, err := ParseField(bad); !errors.Is(err, ErrInvalidField) {
			t.Fatalf("ParseField(%q) error = %v, want ErrInvalidField", bad, err)
		}
	}
}

func TestParseDisplayMode(t *testing.T) {
	cases := map[string]DisplayMode{
		"":      ModeCard,
		"card":  ModeCard,
		"grid":  ModeTable,
		"TABLE": ModeTable,
		"json":  ModeRaw,
		"raw":   ModeRaw,
	}
	for in, want := range cases {
		got, err := ParseDisplayMode(in)
		if err != nil {
			t.Fatalf("ParseDisplayMode(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDisplayMode(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseDisplayMode("carousel"); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("ParseDisplayMode(carousel) error = %v, want ErrInvalidMode", err)
	}
}

func TestCycles(t *testing.T) {
	if got := ModeCard.Next().Next().Next(); got != ModeCard {
		t.Fatalf("mode cycle ended at %v, want card", got)
	}
	if got := DisplayMode(7).Next(); got != ModeCard {
		t.Fatalf("invalid mode Next = %v, want card", got)
	}
	if got := FieldNone.Next(); got != FieldID {
		t.Fatalf("FieldNone.Next = %v, want id", got)
	}
	if got := FieldName.Next(); got != FieldNone {
		t.Fatalf("FieldName.Next = %v, want none", got)
	}
	if got := Field(9).String(); got != "Field(9)" {
		t.Fatalf("Field(9).String = %q", got)
	}
}

func TestDerive_DoesNotModifyInput(t *testing.T) {
	in := []missions.Mission{{ID: "b"}, {ID: "a"}}
	out := Derive(in, Preferences{Sort: FieldID})
	if in[0].ID != "b" || in[1].ID != "a" {
		t.Fatalf("Derive reordered its input: %#v", in)
	}
	if out[0].ID != "a" {
		t.Fatalf("Derive output = %#v, want sorted", out)
	}
	if got := Derive(nil, DefaultPreferences()); got == nil {
		t.Fatalf("Derive(nil) = nil, want empty slice")
	}
}
