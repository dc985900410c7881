package listingtext

import "strings"

// FlattenAmenities reconciles the three amenity encodings providers
// ship into one deduplicated flat list of names:
//
//	(a) a flat sequence of strings
//	(b) a flat sequence of {name} objects
//	(c) a grouped sequence of {group, items: [{name, available}]}
//
// The shape is detected per element. Items explicitly marked
// unavailable are excluded; duplicates collapse case-insensitively,
// keeping the casing of the first occurrence.
func FlattenAmenities(raw []any) []string {
	var out []string
	seen := make(map[string]bool)

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, name)
	}

	for _, el := range raw {
		switch v := el.(type) {
		case string:
			add(v)
		case map[string]any:
			if items, ok := v["items"].([]any); ok {
				for _, item := range items {
					m, ok := item.(map[string]any)
					if !ok {
						continue
					}
					if avail, ok := m["available"].(bool); ok && !avail {
						continue
					}
					add(itemName(m))
				}
				continue
			}
			if avail, ok := v["available"].(bool); ok && !avail {
				continue
			}
			add(itemName(v))
		}
	}
	return out
}

func itemName(m map[string]any) string {
	if s, ok := m["name"].(string); ok && s != "" {
		return s
	}
	if s, ok := m["title"].(string); ok {
		return s
	}
	return ""
}
