package store

import (
	"encoding/json"
	"strings"
)

// Tags is an ordered sequence of short labels. Legacy clients and old rows
// serialized it three different ways (native array, JSON-encoded string,
// single bare string), so it decodes defensively and always re-encodes to a
// canonical JSON array.
type Tags []string

// UnmarshalJSON accepts an array of strings, a string holding a JSON array,
// a bare string (treated as a single tag), or null. Empty and
// whitespace-only entries are dropped.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*t = cleanTags(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Unknown shape, treat as absent rather than failing the request.
		*t = nil
		return nil
	}
	*t = decodeTagString(s)
	return nil
}

// DecodeTags normalizes a persisted tag column to a Tags sequence.
func DecodeTags(raw string) Tags {
	return decodeTagString(raw)
}

// EncodeTags returns the canonical persisted form, a JSON array. Nil encodes
// as "[]" so old bare-string rows never come back.
func EncodeTags(t Tags) string {
	if t == nil {
		t = Tags{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeTagString(s string) Tags {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return cleanTags(arr)
		}
	}
	// Bare string: a single tag.
	return Tags{s}
}

func cleanTags(in []string) Tags {
	out := make(Tags, 0, len(in))
	for _, tag := range in {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// SkillGroups maps a category name to the skills under it. The profile's
// skills went through the same encoding drift as Tags: some rows hold a JSON
// object of groups, some a flat array, some a doubly-encoded string.
type SkillGroups map[string][]string

// DefaultSkillGroup is the bucket used when a flat list arrives without
// category information.
const DefaultSkillGroup = "Skills"

// UnmarshalJSON accepts an object of category -> skills, a flat array
// (grouped under DefaultSkillGroup), a string containing either encoding,
// or null.
func (g *SkillGroups) UnmarshalJSON(data []byte) error {
	var obj map[string][]string
	if err := json.Unmarshal(data, &obj); err == nil {
		*g = cleanGroups(obj)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*g = groupFlat(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*g = nil
		return nil
	}
	*g = DecodeSkillGroups(s)
	return nil
}

// DecodeSkillGroups normalizes a persisted skills column.
func DecodeSkillGroups(raw string) SkillGroups {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var obj map[string][]string
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		return cleanGroups(obj)
	}
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return groupFlat(arr)
	}
	// Doubly-encoded: a JSON string wrapping one of the above.
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil && s != raw {
		return DecodeSkillGroups(s)
	}
	return groupFlat([]string{raw})
}

// EncodeSkillGroups returns the canonical persisted form, a JSON object.
func EncodeSkillGroups(g SkillGroups) string {
	if g == nil {
		g = SkillGroups{}
	}
	b, err := json.Marshal(map[string][]string(g))
	if err != nil {
		return "{}"
	}
	return string(b)
}

func cleanGroups(in map[string][]string) SkillGroups {
	out := make(SkillGroups, len(in))
	for category, skills := range in {
		cleaned := cleanTags(skills)
		if len(cleaned) == 0 {
			continue
		}
		out[category] = cleaned
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func groupFlat(skills []string) SkillGroups {
	cleaned := cleanTags(skills)
	if len(cleaned) == 0 {
		return nil
	}
	return SkillGroups{DefaultSkillGroup: cleaned}
}
