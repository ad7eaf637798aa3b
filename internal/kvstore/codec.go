package kvstore

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// MaxLineSize bounds a single key=value line.
const MaxLineSize = 16 * 1024 * 1024

// Decode reads key=value lines from r. Every line must split on '=' into
// exactly two parts; the first line that does not aborts decoding with
// ErrMalformedFile. Later duplicates of a key replace earlier ones.
func Decode(r io.Reader) (map[string]Value, error) {
	entries := make(map[string]Value)
	err := scanLines(r, func(lineNo int, line string) error {
		key, raw, ok := splitLine(line)
		if !ok {
			return fmt.Errorf("line %d: %w", lineNo, ErrMalformedFile)
		}
		entries[key] = ParseValue(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Lint reads r like Decode but collects the number of every malformed line
// instead of stopping at the first one.
func Lint(r io.Reader) ([]int, error) {
	var bad []int
	err := scanLines(r, func(lineNo int, line string) error {
		if _, _, ok := splitLine(line); !ok {
			bad = append(bad, lineNo)
		}
		return nil
	})
	return bad, err
}

// Encode writes one key=value line per entry, sorted by key.
func Encode(w io.Writer, entries map[string]Value) error {
	bw := bufio.NewWriter(w)
	for _, key := range SortedKeys(entries) {
		if _, err := fmt.Fprintf(bw, "%s=%s\n", key, entries[key]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Marshal returns the encoded form of entries. An empty map encodes to no
// bytes at all.
func Marshal(entries map[string]Value) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, entries) // bytes.Buffer writes do not fail
	return buf.Bytes()
}

// SortedKeys returns the keys of entries in ascending order.
func SortedKeys(entries map[string]Value) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func splitLine(line string) (key, raw string, ok bool) {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func scanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := fn(lineNo, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading line %d: %w", lineNo+1, err)
	}
	return nil
}
