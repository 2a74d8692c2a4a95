package analytics

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return v
}

func TestCountDataItems(t *testing.T) {
	data := decode(t, `{
		"notes": [1, 2, 3],
		"patients": {"p1": {}, "p2": {}},
		"flags": {"armed": true, "silent": false},
		"counts": {"zero": 0, "one": 7},
		"strings": {"empty": "", "full": "x"},
		"nothing": null,
		"nested": {"deep": {"items": [1]}}
	}`)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"array counts elements", "notes", 3},
		{"object counts keys", "patients", 2},
		{"true scalar counts 1", "flags.armed", 1},
		{"false scalar counts 0", "flags.silent", 0},
		{"zero number counts 0", "counts.zero", 0},
		{"nonzero number counts 1", "counts.one", 1},
		{"empty string counts 0", "strings.empty", 0},
		{"nonempty string counts 1", "strings.full", 1},
		{"null counts 0", "nothing", 0},
		{"missing path counts 0", "does.not.exist", 0},
		{"deep path resolves", "nested.deep.items", 1},
		{"path through array unresolved", "notes.0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountDataItems(data, tt.path); got != tt.want {
				t.Errorf("CountDataItems(%q) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestCountDataItemsNilRoot(t *testing.T) {
	if got := CountDataItems(nil, "anything"); got != 0 {
		t.Errorf("CountDataItems(nil) = %d, want 0", got)
	}
}

func TestCountCategoriesDirectAliases(t *testing.T) {
	data := decode(t, `{
		"notes": [1, 2],
		"patient_location": {"lat": 1, "lon": 2},
		"settings": {"a": 1},
		"patients": [{}],
		"unknown_people": [1, 2, 3, 4],
		"chat": [1],
		"game_result": [],
		"history": [1, 2, 3]
	}`)

	got := CountCategories(data)
	want := map[string]int{
		"notes":            2,
		"patientLocation":  2, // object keys
		"patientsSettings": 1,
		"patients":         1,
		"unknownPeople":    4,
		"chatMessage":      1,
		"gameResult":       1, // empty array counts 0 directly, found as one leaf by the fallback
		"locationHistory":  3,
	}

	for k, w := range want {
		if got[k] != w {
			t.Errorf("CountCategories()[%q] = %d, want %d", k, got[k], w)
		}
	}
}

func TestCountCategoriesAliasOrder(t *testing.T) {
	// First non-zero alias wins even when a later one is also present.
	data := decode(t, `{"notes": [1, 2, 3], "note": [1]}`)
	got := CountCategories(data)
	if got["notes"] != 3 {
		t.Errorf("notes = %d, want first alias (3)", got["notes"])
	}
}

func TestCountCategoriesZeroAliasFallsThrough(t *testing.T) {
	// An alias that resolves but counts zero does not stop the scan; the
	// next alias with a non-zero count is taken.
	data := decode(t, `{"notes": [], "note": [1]}`)
	got := CountCategories(data)
	if got["notes"] != 1 {
		t.Errorf("notes = %d, want 1 from the second alias", got["notes"])
	}
}

func TestCountCategoriesFallbackSubstring(t *testing.T) {
	// No top-level alias counts; the category is scored by how many
	// flattened leaf paths contain an alias, not by the leaf's own count.
	data := decode(t, `{"export": {"UnknownPeopleLog": [1, 2, 3, 4, 5]}}`)
	got := CountCategories(data)
	if got["unknownPeople"] != 1 {
		t.Errorf("unknownPeople = %d, want 1 matching entry via fallback", got["unknownPeople"])
	}
}

func TestCountCategoriesFallbackCountsMatchingEntries(t *testing.T) {
	data := decode(t, `{"logs": {"unknownFaces": [1, 2], "unknown_visits": 3}}`)
	got := CountCategories(data)
	if got["unknownPeople"] != 2 {
		t.Errorf("unknownPeople = %d, want 2 matching leaf paths", got["unknownPeople"])
	}
}

func TestCountCategoriesEmpty(t *testing.T) {
	got := CountCategories(nil)
	if len(got) != len(Categories) {
		t.Fatalf("CountCategories(nil) returned %d entries, want %d", len(got), len(Categories))
	}
	for k, v := range got {
		if v != 0 {
			t.Errorf("CountCategories(nil)[%q] = %d, want 0", k, v)
		}
	}
}

func TestFlatten(t *testing.T) {
	// Mapping nodes are traversed, not listed; only leaves come back.
	data := decode(t, `{"a": {"b": {"c": 1}}, "d": [1, 2]}`)
	paths := Flatten(data)

	want := []string{"a.b.c", "d"}
	if len(paths) != len(want) {
		t.Fatalf("Flatten() = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("Flatten()[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}
