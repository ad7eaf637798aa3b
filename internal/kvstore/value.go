package kvstore

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which variant of a Value is active.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	default:
		return "text"
	}
}

// Value is a tagged scalar: a non-negative integer, a string or a boolean.
// The zero Value is Text("").
type Value struct {
	kind    Kind
	integer uint64
	text    string
	boolean bool
}

// Int returns an Integer value.
func Int(n uint64) Value { return Value{kind: KindInteger, integer: n} }

// Text returns a Text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool returns a Boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, boolean: b} }

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// AsInt returns the integer and true if v is an Integer.
func (v Value) AsInt() (uint64, bool) { return v.integer, v.kind == KindInteger }

// AsText returns the string and true if v is Text.
func (v Value) AsText() (string, bool) { return v.text, v.kind == KindText }

// AsBool returns the boolean and true if v is a Boolean.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == KindBoolean }

// String returns the literal form written to the backing file.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatUint(v.integer, 10)
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	default:
		return v.text
	}
}

// GoString renders the variant explicitly, e.g. Int(42) or Text("hi").
func (v Value) GoString() string {
	switch v.kind {
	case KindInteger:
		return fmt.Sprintf("Int(%d)", v.integer)
	case KindBoolean:
		return fmt.Sprintf("Bool(%t)", v.boolean)
	default:
		return fmt.Sprintf("Text(%q)", v.text)
	}
}

// MarshalJSON encodes the value as the matching JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInteger:
		return json.Marshal(v.integer)
	case KindBoolean:
		return json.Marshal(v.boolean)
	default:
		return json.Marshal(v.text)
	}
}

// ParseValue interprets a raw token: "true" and "false" become Booleans,
// a base-10 number that fits in uint64 becomes an Integer, anything else is
// kept verbatim as Text.
func ParseValue(raw string) Value {
	switch raw {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return Int(n)
	}
	return Text(raw)
}

// Equal reports whether v and other hold the same variant and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.integer == other.integer
	case KindBoolean:
		return v.boolean == other.boolean
	default:
		return v.text == other.text
	}
}
