package store

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Tags
	}{
		{"json array", `["Go","React"]`, Tags{"Go", "React"}},
		{"json array with empties", `["Go","","  ","React"]`, Tags{"Go", "React"}},
		{"bare string", "Go", Tags{"Go"}},
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"malformed array falls back to bare", `["Go",`, Tags{`["Go",`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeTags(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DecodeTags(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEncodeTagsCanonical(t *testing.T) {
	if got := EncodeTags(nil); got != "[]" {
		t.Fatalf("EncodeTags(nil) = %q, want []", got)
	}
	if got := EncodeTags(Tags{"Go", "React"}); got != `["Go","React"]` {
		t.Fatalf("EncodeTags = %q", got)
	}
}

func TestTagsRoundTrip(t *testing.T) {
	original := Tags{"Go", "React"}
	decoded := DecodeTags(EncodeTags(original))
	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("round trip changed tags: %#v", decoded)
	}
}

func TestTagsUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Tags
	}{
		{"native array", `["Go","React"]`, Tags{"Go", "React"}},
		{"encoded string", `"[\"Go\",\"React\"]"`, Tags{"Go", "React"}},
		{"bare string", `"Go"`, Tags{"Go"}},
		{"null", `null`, nil},
		{"number is ignored", `42`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Tags
			if err := json.Unmarshal([]byte(tt.body), &got); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unmarshal %s = %#v, want %#v", tt.body, got, tt.want)
			}
		})
	}
}

func TestDecodeSkillGroups(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want SkillGroups
	}{
		{
			"grouped object",
			`{"Backend":["Go","SQL"],"Frontend":["React"]}`,
			SkillGroups{"Backend": {"Go", "SQL"}, "Frontend": {"React"}},
		},
		{
			"flat array",
			`["Go","React"]`,
			SkillGroups{DefaultSkillGroup: {"Go", "React"}},
		},
		{
			"doubly encoded object",
			`"{\"Backend\":[\"Go\"]}"`,
			SkillGroups{"Backend": {"Go"}},
		},
		{"bare string", "Go", SkillGroups{DefaultSkillGroup: {"Go"}}},
		{"empty", "", nil},
		{"empty object", "{}", nil},
		{"group with only empties dropped", `{"Backend":["",""]}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeSkillGroups(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DecodeSkillGroups(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSkillGroupsUnmarshalJSON(t *testing.T) {
	var got SkillGroups
	if err := json.Unmarshal([]byte(`["Go","React"]`), &got); err != nil {
		t.Fatal(err)
	}
	want := SkillGroups{DefaultSkillGroup: {"Go", "React"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flat array = %#v, want %#v", got, want)
	}

	got = nil
	if err := json.Unmarshal([]byte(`{"DevOps":["CI/CD","Git"]}`), &got); err != nil {
		t.Fatal(err)
	}
	want = SkillGroups{"DevOps": {"CI/CD", "Git"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("object = %#v, want %#v", got, want)
	}
}
