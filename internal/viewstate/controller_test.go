package viewstate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/missionboard/internal/missions"
)

func fixture() []missions.Mission {
	return []missions.Mission{
		{ID: "9D1B7E0", Name: "Thaicom", Manufacturers: missions.Manufacturers{"Orbital ATK"}},
		{ID: "F4F83DE", Name: "Telstar", Manufacturers: missions.Manufacturers{"SSL"}},
		{ID: "F3364BF", Name: "Iridium NEXT", Manufacturers: missions.Manufacturers{"Orbital ATK"}},
		{ID: "EE86F74", Name: "Commercial Resupply Services", Manufacturers: missions.Manufacturers{"SpaceX"}},
		{ID: "6C42550", Name: "SES", Manufacturers: missions.Manufacturers{"SES"}},
	}
}

func ids(records []missions.Mission) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func loaded(t *testing.T, records []missions.Mission) *Controller {
	t.Helper()
	c := New()
	c.LoadAuthoritative(records)
	return c
}

func TestController_IdentityWithDefaultPreferences(t *testing.T) {
	src := fixture()
	c := loaded(t, src)

	if diff := cmp.Diff(src, c.DisplayedSet()); diff != "" {
		t.Fatalf("DisplayedSet mismatch (-want +got):\n%s", diff)
	}
	if !c.Preferences().IsDefault() {
		t.Fatalf("Preferences = %+v, want defaults", c.Preferences())
	}
}

func TestController_ZeroValueIsUsable(t *testing.T) {
	var c Controller
	if got := c.DisplayedSet(); got == nil || len(got) != 0 {
		t.Fatalf("DisplayedSet = %#v, want empty non-nil slice", got)
	}
	if err := c.SetFilter(FieldName, "x"); err != nil {
		t.Fatalf("SetFilter on zero controller returned error: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

func TestController_FilterByNameIsCaseInsensitiveSubstring(t *testing.T) {
	c := loaded(t, []missions.Mission{
		{ID: "a1", Name: "Falcon"},
		{ID: "b2", Name: "Dragon"},
	})

	if err := c.SetFilter(FieldName, "drag"); err != nil {
		t.Fatalf("SetFilter returned error: %v", err)
	}
	want := []missions.Mission{{ID: "b2", Name: "Dragon"}}
	if diff := cmp.Diff(want, c.DisplayedSet()); diff != "" {
		t.Fatalf("DisplayedSet mismatch (-want +got):\n%s", diff)
	}

	if err := c.SetFilter(FieldID, "A"); err != nil {
		t.Fatalf("SetFilter returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"a1"}, ids(c.DisplayedSet())); diff != "" {
		t.Fatalf("filter by id mismatch (-want +got):\n%s", diff)
	}
}

func TestController_FilterNoneKeepsEverything(t *testing.T) {
	c := loaded(t, fixture())
	if err := c.SetFilter(FieldNone, "does not matter"); err != nil {
		t.Fatalf("SetFilter returned error: %v", err)
	}
	if diff := cmp.Diff(ids(fixture()), ids(c.DisplayedSet())); diff != "" {
		t.Fatalf("DisplayedSet mismatch (-want +got):\n%s", diff)
	}
	if got := c.Preferences().Filter.Query; got != "does not matter" {
		t.Fatalf("Filter.Query = %q, want it recorded", got)
	}
}

func TestController_SortIsStable(t *testing.T) {
	first := missions.Mission{ID: "a", Name: "first"}
	second := missions.Mission{ID: "a", Name: "second"}
	c := loaded(t, []missions.Mission{{ID: "b", Name: "b"}, first, second})

	if err := c.SetSortKey(FieldID); err != nil {
		t.Fatalf("SetSortKey returned error: %v", err)
	}
	want := []missions.Mission{first, second, {ID: "b", Name: "b"}}
	if diff := cmp.Diff(want, c.DisplayedSet()); diff != "" {
		t.Fatalf("DisplayedSet mismatch (-want +got):\n%s", diff)
	}
}

func TestController_SortIsLexicographicNotNumeric(t *testing.T) {
	c := loaded(t, []missions.Mission{{ID: "10"}, {ID: "9"}, {ID: "100"}, {ID: "B"}, {ID: "a"}})
	if err := c.SetSortKey(FieldID); err != nil {
		t.Fatalf("SetSortKey returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"10", "100", "9", "B", "a"}, ids(c.DisplayedSet())); diff != "" {
		t.Fatalf("sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestController_SortIsIdempotent(t *testing.T) {
	c := loaded(t, fixture())
	if err := c.SetSortKey(FieldName); err != nil {
		t.Fatalf("SetSortKey returned error: %v", err)
	}
	once := c.DisplayedSet()
	if err := c.SetSortKey(FieldName); err != nil {
		t.Fatalf("SetSortKey returned error: %v", err)
	}
	if diff := cmp.Diff(once, c.DisplayedSet()); diff != "" {
		t.Fatalf("second sort changed result (-first +second):\n%s", diff)
	}
	want := []string{"Commercial Resupply Services", "Iridium NEXT", "SES", "Telstar", "Thaicom"}
	var got []string
	for _, m := range once {
		got = append(got, m.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sorted names mismatch (-want +got):\n%s", diff)
	}
}

func TestController_SortNoneRestoresFilteredOrder(t *testing.T) {
	c := loaded(t, fixture())
	_ = c.SetSortKey(FieldName)
	_ = c.SetFilter(FieldName, "t")
	_ = c.SetSortKey(FieldNone)

	want := []string{"9D1B7E0", "F4F83DE", "F3364BF"}
	if diff := cmp.Diff(want, ids(c.DisplayedSet())); diff != "" {
		t.Fatalf("DisplayedSet mismatch (-want +got):\n%s", diff)
	}
}

func TestController_FilterAndSortCommute(t *testing.T) {
	filters := []Filter{{FieldName, "i"}, {FieldID, "f"}, {FieldNone, ""}, {FieldName, "zzz"}}
	sorts := []Field{FieldNone, FieldID, FieldName}

	for _, f := range filters {
		for _, k := range sorts {
			a := loaded(t, fixture())
			_ = a.SetFilter(f.Field, f.Query)
			_ = a.SetSortKey(k)

			b := loaded(t, fixture())
			_ = b.SetSortKey(k)
			_ = b.SetFilter(f.Field, f.Query)

			if diff := cmp.Diff(a.DisplayedSet(), b.DisplayedSet()); diff != "" {
				t.Fatalf("filter %+v / sort %v not order independent (-filter-first +sort-first):\n%s", f, k, diff)
			}
			if a.Preferences() != b.Preferences() {
				t.Fatalf("preferences differ: %+v vs %+v", a.Preferences(), b.Preferences())
			}
		}
	}
}

func TestController_RefilteringDerivesFromSource(t *testing.T) {
	c := loaded(t, fixture())
	_ = c.SetFilter(FieldName, "thaicom")
	_ = c.SetFilter(FieldName, "tel")

	if diff := cmp.Diff([]string{"F4F83DE"}, ids(c.DisplayedSet())); diff != "" {
		t.Fatalf("second filter should not narrow the first (-want +got):\n%s", diff)
	}
}

func TestController_EmptyResultIsNotAnError(t *testing.T) {
	c := loaded(t, fixture())
	if err := c.SetFilter(FieldName, "no such mission"); err != nil {
		t.Fatalf("SetFilter returned error: %v", err)
	}
	got := c.DisplayedSet()
	if got == nil || len(got) != 0 {
		t.Fatalf("DisplayedSet = %#v, want empty non-nil slice", got)
	}
	if c.Total() != len(fixture()) {
		t.Fatalf("Total = %d, want %d", c.Total(), len(fixture()))
	}
}

func TestController_InvalidFieldLeavesStateIntact(t *testing.T) {
	c := loaded(t, fixture())
	_ = c.SetFilter(FieldName, "t")
	_ = c.SetSortKey(FieldID)
	beforePrefs := c.Preferences()
	beforeSet := c.DisplayedSet()

	if err := c.SetSortKey(Field(42)); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("SetSortKey(42) error = %v, want ErrInvalidField", err)
	}
	if err := c.SetFilter(Field(-1), "x"); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("SetFilter(-1) error = %v, want ErrInvalidField", err)
	}
	if err := c.SetDisplayMode(DisplayMode(9)); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("SetDisplayMode(9) error = %v, want ErrInvalidMode", err)
	}

	if c.Preferences() != beforePrefs {
		t.Fatalf("Preferences changed: %+v -> %+v", beforePrefs, c.Preferences())
	}
	if diff := cmp.Diff(beforeSet, c.DisplayedSet()); diff != "" {
		t.Fatalf("DisplayedSet changed (-before +after):\n%s", diff)
	}
}

func TestController_SetDisplayModeDoesNotRederive(t *testing.T) {
	c := loaded(t, fixture())
	_ = c.SetSortKey(FieldName)
	before := c.DisplayedSet()

	if err := c.SetDisplayMode(ModeRaw); err != nil {
		t.Fatalf("SetDisplayMode returned error: %v", err)
	}
	p := c.Preferences()
	if p.Mode != ModeRaw || p.Sort != FieldName {
		t.Fatalf("Preferences = %+v, want raw mode with name sort kept", p)
	}
	if diff := cmp.Diff(before, c.DisplayedSet()); diff != "" {
		t.Fatalf("DisplayedSet changed (-before +after):\n%s", diff)
	}
}

func TestController_LoadAuthoritativeResetsPreferences(t *testing.T) {
	c := loaded(t, fixture())
	_ = c.SetSortKey(FieldName)
	_ = c.SetFilter(FieldID, "f")
	_ = c.SetDisplayMode(ModeTable)

	fresh := []missions.Mission{{ID: "z", Name: "Zeta"}, {ID: "y", Name: "Alpha"}}
	c.LoadAuthoritative(fresh)

	if diff := cmp.Diff(fresh, c.DisplayedSet()); diff != "" {
		t.Fatalf("DisplayedSet mismatch (-want +got):\n%s", diff)
	}
	if !c.Preferences().IsDefault() {
		t.Fatalf("Preferences = %+v, want defaults after load", c.Preferences())
	}
}

func TestController_ResetViewRestoresAuthoritativeOrder(t *testing.T) {
	c := loaded(t, fixture())
	_ = c.SetFilter(FieldName, "s")
	_ = c.SetSortKey(FieldID)
	_ = c.SetDisplayMode(ModeRaw)

	c.ResetView()

	if diff := cmp.Diff(fixture(), c.DisplayedSet()); diff != "" {
		t.Fatalf("DisplayedSet mismatch (-want +got):\n%s", diff)
	}
	if !c.Preferences().IsDefault() {
		t.Fatalf("Preferences = %+v, want defaults", c.Preferences())
	}
}

func TestController_CopiesDoNotAlias(t *testing.T) {
	src := fixture()
	c := loaded(t, src)

	src[0].Name = "mutated by caller"
	if got := c.Authoritative()[0].Name; got != "Thaicom" {
		t.Fatalf("authoritative aliased caller slice: %q", got)
	}

	out := c.DisplayedSet()
	out[0].Name = "mutated by renderer"
	if got := c.DisplayedSet()[0].Name; got != "Thaicom" {
		t.Fatalf("DisplayedSet aliased internal slice: %q", got)
	}
}

func TestController_CopiesDoNotShareManufacturers(t *testing.T) {
	src := fixture()
	c := loaded(t, src)

	src[0].Manufacturers[0] = "mutated by caller"
	if got := c.Authoritative()[0].Manufacturers[0]; got != "Orbital ATK" {
		t.Fatalf("authoritative manufacturers aliased caller slice: %q", got)
	}

	c.DisplayedSet()[0].Manufacturers[0] = "mutated through displayed"
	c.Authoritative()[0].Manufacturers[0] = "mutated through authoritative"
	if got := c.Authoritative()[0].Manufacturers[0]; got != "Orbital ATK" {
		t.Fatalf("authoritative manufacturers mutated through a returned copy: %q", got)
	}
	if got := c.DisplayedSet()[0].Manufacturers[0]; got != "Orbital ATK" {
		t.Fatalf("displayed manufacturers mutated through a returned copy: %q", got)
	}

	// Re-deriving after the mutations still sees the loaded values.
	if err := c.SetFilter(FieldName, "thai"); err != nil {
		t.Fatalf("SetFilter returned error: %v", err)
	}
	if diff := cmp.Diff(fixture()[:1], c.DisplayedSet()); diff != "" {
		t.Fatalf("DisplayedSet mismatch (-want +got):\n%s", diff)
	}
}
