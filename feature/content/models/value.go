package models

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// Kind discriminates the two field value shapes.
type Kind int

const (
	// KindScalar is plain text. The zero Value is an empty scalar.
	KindScalar Kind = iota
	// KindList is an ordered list of text items.
	KindList
)

// Value is one field value in a single language: either scalar text or an
// ordered list of text items. The discriminant is explicit so in-memory code
// never has to guess a shape; only the row codec (DecodeColumn) deals with
// the historical single-text-column representation.
type Value struct {
	Kind  Kind
	Text  string
	Items []string
}

// ScalarValue builds a scalar text value.
func ScalarValue(text string) Value {
	return Value{Kind: KindScalar, Text: text}
}

// ListValue builds an ordered list value.
func ListValue(items ...string) Value {
	return Value{Kind: KindList, Items: items}
}

// IsZero reports whether the value carries no content.
func (v Value) IsZero() bool {
	if v.Kind == KindList {
		return len(v.Items) == 0
	}
	return v.Text == ""
}

// Equal reports deep equality, including list order.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	if v.Kind == KindList {
		return slices.Equal(v.Items, other.Items)
	}
	return v.Text == other.Text
}

// Clone returns a deep copy.
func (v Value) Clone() Value {
	if v.Kind == KindList {
		return Value{Kind: KindList, Items: slices.Clone(v.Items)}
	}
	return v
}

// MarshalJSON renders a scalar as a JSON string and a list as a JSON array,
// matching the shape of the bundled fallback snapshot.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindList {
		items := v.Items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts either a JSON string or a JSON string array.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*v = ListValue(items...)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*v = ScalarValue(text)
	return nil
}

// EncodeColumn serializes the value into the single text column the remote
// row format uses: scalar text verbatim, lists as a JSON array literal.
func (v Value) EncodeColumn() string {
	if v.Kind == KindList {
		data, err := json.Marshal(v.Items)
		if err != nil {
			// []string cannot fail to marshal; keep the compiler honest.
			return ""
		}
		return string(data)
	}
	return v.Text
}

// DecodeColumn interprets a stored text column. Trimmed content that looks
// like a bracketed array literal and parses as a string array becomes a
// list; anything else, including a failed parse, is scalar text. The parse
// failure is deliberate silence: stored prose may legitimately start with
// a bracket.
func DecodeColumn(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		var items []string
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return ListValue(items...)
		}
	}
	return ScalarValue(raw)
}
