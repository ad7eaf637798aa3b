// Package kvstore defines the value model, the line-oriented file codec and
// the Store interface for a small persistent key-value store.
// Implementations live in subpackages (see kvstore/filesystem).
package kvstore

import (
	"fmt"
	"strings"
)

// Store is a string-keyed map of Values with whole-file persistence.
// Reads never touch disk; every mutation rewrites the backing file before
// returning.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (Value, bool)

	// Insert sets key to value, replacing any existing entry.
	Insert(key string, value Value) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error

	// Clear removes every entry and truncates the backing file.
	Clear() error

	// Len returns the number of entries.
	Len() int

	// IsEmpty reports whether the store holds no entries.
	IsEmpty() bool

	// Keys returns all keys in ascending order.
	Keys() []string

	// All returns a copy of the full mapping.
	All() map[string]Value
}

// ValidateEntry checks that key and value survive a round trip through the
// line format. The file carries no type tags, so Text that ParseValue would
// read back as an Integer or Boolean is rejected too.
func ValidateEntry(key string, value Value) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty: %w", ErrInvalidEntry)
	}
	if strings.ContainsAny(key, "=\r\n") {
		return fmt.Errorf("key %q contains '=' or a line break: %w", key, ErrInvalidEntry)
	}
	if value.Kind() == KindText && strings.ContainsAny(value.text, "=\r\n") {
		return fmt.Errorf("value for key %q contains '=' or a line break: %w", key, ErrInvalidEntry)
	}
	if value.Kind() == KindText {
		if kind := ParseValue(value.text).Kind(); kind != KindText {
			return fmt.Errorf("text value %q for key %q would load back as %s: %w", value.text, key, kind, ErrInvalidEntry)
		}
	}
	return nil
}
