package transcription

import (
	"encoding/json"
	"testing"
)

func TestParseTextField_Kinds(t *testing.T) {
	tests := []struct {
		name string
		raw  json.RawMessage
		want TextKind
	}{
		{"missing", nil, TextAbsent},
		{"null", json.RawMessage(`null`), TextAbsent},
		{"string", json.RawMessage(`"hello"`), TextPlain},
		{"json string", json.RawMessage(`"{\"text\": \"x\"}"`), TextPlain},
		{"nested object", json.RawMessage(`{"text": "inner"}`), TextNested},
		{"object without text", json.RawMessage(`{"other": 1}`), TextOther},
		{"number", json.RawMessage(`42`), TextOther},
		{"array", json.RawMessage(`["a"]`), TextOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseTextField(tc.raw).Kind; got != tc.want {
				t.Errorf("ParseTextField(%s).Kind = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `"hello world"`, "hello world"},
		{"stringified nested", `"{\"text\": \"nested value\"}"`, "nested value"},
		{"stringified nested with whitespace", `"  {\"text\": \"padded\"}  "`, "padded"},
		{"malformed stringified object", `"{not valid json}"`, "{not valid json}"},
		{"stringified object without text", `"{\"other\": \"x\"}"`, `{"other": "x"}`},
		{"stringified nested null", `"{\"text\": null}"`, ""},
		{"unwraps one level only", `"{\"text\": \"{\\\"text\\\": \\\"deep\\\"}\"}"`, `{"text": "deep"}`},
		{"object with text", `{"text": "from object"}`, "from object"},
		{"object with nested object", `{"text": {"text": "deep"}}`, `{"text":"deep"}`},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
		{"false", `false`, ""},
		{"true", `true`, "true"},
		{"zero", `0`, ""},
		{"zero float", `0.0`, ""},
		{"number", `12.5`, "12.5"},
		{"empty object", `{}`, ""},
		{"empty array", `[]`, ""},
		{"array", `[ "a", "b" ]`, `["a","b"]`},
		{"object without text", `{ "words": [] }`, `{"words":[]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeText(json.RawMessage(tc.raw)); got != tc.want {
				t.Errorf("NormalizeText(%s) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeText_Absent(t *testing.T) {
	if got := NormalizeText(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestTextKind_String(t *testing.T) {
	if TextNested.String() != "nested" || TextAbsent.String() != "absent" {
		t.Error("unexpected TextKind names")
	}
}
