package transcription

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// TextKind tags the shape of the upstream "text" member.
type TextKind int

const (
	// TextAbsent is a missing or null member.
	TextAbsent TextKind = iota
	// TextPlain is a JSON string.
	TextPlain
	// TextNested is an object carrying its own "text" key.
	TextNested
	// TextOther is any other JSON value.
	TextOther
)

func (k TextKind) String() string {
	switch k {
	case TextAbsent:
		return "absent"
	case TextPlain:
		return "plain"
	case TextNested:
		return "nested"
	default:
		return "other"
	}
}

// TextField is the decoded upstream "text" member. Only the payload matching
// Kind is set: Plain for TextPlain, Raw for TextNested (the inner "text"
// value) and TextOther (the whole value).
type TextField struct {
	Kind  TextKind
	Plain string
	Raw   json.RawMessage
}

// ParseTextField classifies raw, the undecoded "text" member. A nil raw
// means the member was absent.
func ParseTextField(raw json.RawMessage) TextField {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return TextField{Kind: TextAbsent}
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return TextField{Kind: TextPlain, Plain: s}
		}
	case '{':
		if inner, ok := nestedText(raw); ok {
			return TextField{Kind: TextNested, Raw: inner}
		}
	}
	return TextField{Kind: TextOther, Raw: raw}
}

// Resolve returns the transcript string for the field. A plain string that
// looks like a JSON object with a "text" key is unwrapped once; if it does
// not parse it is kept as is. Falsy values resolve to "".
func (f TextField) Resolve() string {
	switch f.Kind {
	case TextPlain:
		trimmed := strings.TrimSpace(f.Plain)
		if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
			if inner, ok := nestedText([]byte(trimmed)); ok {
				return render(inner)
			}
		}
		return f.Plain
	case TextNested, TextOther:
		return render(f.Raw)
	default:
		return ""
	}
}

// NormalizeText resolves the "text" member of an upstream response.
func NormalizeText(raw json.RawMessage) string {
	return ParseTextField(raw).Resolve()
}

// nestedText returns the "text" member of a JSON object.
func nestedText(raw []byte) (json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, false
	}
	inner, ok := obj["text"]
	return inner, ok
}

// render turns a JSON value into transcript text without further unwrapping.
func render(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 'n', 'f':
		return ""
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err == nil && len(obj) == 0 {
			return ""
		}
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err == nil && len(arr) == 0 {
			return ""
		}
	case 't':
	default:
		if n, err := strconv.ParseFloat(string(raw), 64); err == nil && n == 0 {
			return ""
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
