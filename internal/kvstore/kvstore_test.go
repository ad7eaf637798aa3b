package kvstore

import (
	"errors"
	"testing"
)

func TestValidateEntry_Valid(t *testing.T) {
	cases := []struct {
		key   string
		value Value
	}{
		{"name", Text("alice")},
		{"count", Int(3)},
		{"with space", Text("a b")},
		{"empty-text", Text("")},
		{"signed", Text("+5")},
		{"decimal", Text("4.2")},
		{"capital", Text("True")},
	}
	for _, c := range cases {
		if err := ValidateEntry(c.key, c.value); err != nil {
			t.Errorf("ValidateEntry(%q, %#v) unexpected error: %v", c.key, c.value, err)
		}
	}
}

func TestValidateEntry_Invalid(t *testing.T) {
	cases := []struct {
		key   string
		value Value
	}{
		{"", Int(1)},
		{"a=b", Int(1)},
		{"line\nbreak", Bool(true)},
		{"k", Text("x=y")},
		{"k", Text("x\r\n")},
		{"zip", Text("02139")},
		{"word", Text("true")},
		{"word", Text("false")},
	}
	for _, c := range cases {
		err := ValidateEntry(c.key, c.value)
		if !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("ValidateEntry(%q, %#v) error = %v, want ErrInvalidEntry", c.key, c.value, err)
		}
	}
}
