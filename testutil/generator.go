// Package testutil provides test utilities for kv store testing.
package testutil

import (
	"fmt"
	"math/rand"
	"strings"

	"kvdb/internal/kvstore"
)

// textAlphabet excludes '=' and line breaks, which the file format cannot
// carry, and digits, so generated Text never reloads as an Integer.
const textAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ _-.:/,;!?é✓"

// EntryGenerator creates random entries that survive a save/load round trip.
type EntryGenerator struct {
	rng  *rand.Rand
	keys []string
}

// NewEntryGenerator creates a generator seeded with seed, so failures are
// reproducible.
func NewEntryGenerator(seed int64) *EntryGenerator {
	return &EntryGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Keys returns all keys inserted through Populate.
func (g *EntryGenerator) Keys() []string {
	return g.keys
}

// Value returns a random Value of a random kind.
func (g *EntryGenerator) Value() kvstore.Value {
	switch g.rng.Intn(3) {
	case 0:
		return kvstore.Int(g.rng.Uint64())
	case 1:
		return kvstore.Bool(g.rng.Intn(2) == 0)
	default:
		return kvstore.Text(g.text(g.rng.Intn(24)))
	}
}

// Entries returns n random entries with distinct keys.
func (g *EntryGenerator) Entries(n int) map[string]kvstore.Value {
	entries := make(map[string]kvstore.Value, n)
	for i := 0; len(entries) < n; i++ {
		entries[fmt.Sprintf("key-%d-%s", i, g.text(1+g.rng.Intn(8)))] = g.Value()
	}
	return entries
}

// Populate inserts n random entries into s and returns them.
func (g *EntryGenerator) Populate(s kvstore.Store, n int) (map[string]kvstore.Value, error) {
	entries := g.Entries(n)
	for _, key := range kvstore.SortedKeys(entries) {
		if err := s.Insert(key, entries[key]); err != nil {
			return nil, fmt.Errorf("insert %s: %w", key, err)
		}
		g.keys = append(g.keys, key)
	}
	return entries, nil
}

// Cleanup removes every key inserted by Populate.
func (g *EntryGenerator) Cleanup(s kvstore.Store) error {
	for i := len(g.keys) - 1; i >= 0; i-- {
		if err := s.Remove(g.keys[i]); err != nil {
			return fmt.Errorf("cleanup key %s: %w", g.keys[i], err)
		}
	}
	g.keys = g.keys[:0]
	return nil
}

// text returns a random string of n runes from textAlphabet, avoiding the
// exact literals "true" and "false".
func (g *EntryGenerator) text(n int) string {
	runes := []rune(textAlphabet)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(runes[g.rng.Intn(len(runes))])
	}
	s := sb.String()
	if s == "true" || s == "false" {
		return s + "_"
	}
	return s
}
