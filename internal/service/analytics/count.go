package analytics

import (
	"sort"
	"strings"
)

// Category is a named bucket on the analytics dashboard. Aliases are the
// key names imports have been seen to use for it, tried in order.
type Category struct {
	Name    string
	Aliases []string
}

// Categories are the fixed dashboard buckets.
var Categories = []Category{
	{Name: "notes", Aliases: []string{"notes", "note"}},
	{Name: "patientLocation", Aliases: []string{"patientLocation", "patient_location", "locations"}},
	{Name: "patientsSettings", Aliases: []string{"patientsSettings", "patient_settings", "settings"}},
	{Name: "patients", Aliases: []string{"patients", "patient"}},
	{Name: "unknownPeople", Aliases: []string{"unknownPeople", "unknown_people", "unknown"}},
	{Name: "chatMessage", Aliases: []string{"chatMessage", "chat_message", "messages", "chat"}},
	{Name: "gameResult", Aliases: []string{"gameResult", "game_result", "games", "game"}},
	{Name: "locationHistory", Aliases: []string{"locationHistory", "location_history", "history"}},
}

// CountDataItems resolves a dot-separated path inside decoded JSON and counts
// what it finds: a sequence counts its elements, a mapping counts its keys,
// any other non-empty value counts 1. An unresolved path, nil, false, zero
// and the empty string all count 0.
func CountDataItems(data any, path string) int {
	v, ok := resolvePath(data, path)
	if !ok {
		return 0
	}
	return countValue(v)
}

func countValue(v any) int {
	switch t := v.(type) {
	case nil:
		return 0
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case float64:
		if t == 0 {
			return 0
		}
		return 1
	case string:
		if t == "" {
			return 0
		}
		return 1
	default:
		return 1
	}
}

func resolvePath(data any, path string) (any, bool) {
	if path == "" {
		return data, true
	}
	cur := data
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Flatten walks nested mappings and returns the dot-paths of the leaves,
// sorted. Mapping nodes are descended into, not emitted; sequences, scalars
// and nulls are the leaves.
func Flatten(data any) []string {
	var paths []string
	flattenInto("", data, &paths)
	sort.Strings(paths)
	return paths
}

func flattenInto(prefix string, v any, out *[]string) {
	m, ok := v.(map[string]any)
	if !ok {
		if prefix != "" {
			*out = append(*out, prefix)
		}
		return
	}
	for k, child := range m {
		p := k
		if prefix != "" {
			p = prefix + "." + k
		}
		flattenInto(p, child, out)
	}
}

// CountCategories produces the per-category item counts for decoded import
// data. Each category tries its aliases as top-level dot-paths in order and
// takes the first non-zero count; when every alias comes up zero it falls
// back to counting the flattened leaf paths that contain any alias as a
// case-insensitive substring.
func CountCategories(data any) map[string]int {
	out := make(map[string]int, len(Categories))

	var flat []string // computed lazily, most imports resolve directly
	for _, cat := range Categories {
		count := 0
		for _, alias := range cat.Aliases {
			if n := CountDataItems(data, alias); n > 0 {
				count = n
				break
			}
		}

		if count == 0 {
			if flat == nil {
				flat = Flatten(data)
			}
			for _, p := range flat {
				lower := strings.ToLower(p)
				for _, alias := range cat.Aliases {
					if strings.Contains(lower, strings.ToLower(alias)) {
						count++
						break
					}
				}
			}
		}

		out[cat.Name] = count
	}

	return out
}
