package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry represents a single key-value pair from a .env file.
type Entry struct {
	Key   string
	Value string
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ParseFile reads a .env file and returns key-value entries.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads KEY=VALUE lines. It skips blank lines and lines starting with #,
// accepts an optional "export " prefix and strips one level of matching quotes.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		entries = append(entries, Entry{
			Key:   strings.TrimSpace(key),
			Value: unquote(strings.TrimSpace(value)),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// Map converts entries into a lookup function. Later entries win.
func Map(entries []Entry) LookupFunc {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Chain returns a lookup that consults each function in order and returns the
// first hit. Nil functions are skipped.
func Chain(lookups ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

// Source describes where a traced variable was found.
type Source struct {
	Key    string
	Value  string
	Origin string // "env-file", "process" or "" when unset
}

// Trace reports the origin of each key, checking the env file before the
// process environment. It mirrors the precedence used by Chain(file, os.LookupEnv).
func Trace(keys []string, file, process LookupFunc) []Source {
	out := make([]Source, 0, len(keys))
	for _, k := range keys {
		s := Source{Key: k}
		if file != nil {
			if v, ok := file(k); ok {
				s.Value, s.Origin = v, "env-file"
				out = append(out, s)
				continue
			}
		}
		if process != nil {
			if v, ok := process(k); ok {
				s.Value, s.Origin = v, "process"
			}
		}
		out = append(out, s)
	}
	return out
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// RedactValue returns a redacted version of value if the key name contains
// a sensitive pattern (case-insensitive substring match).
// Values of 4+ runes show the first 4 runes + "***".
// Shorter values are fully redacted as "***".
func RedactValue(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if r := []rune(value); len(r) >= 4 {
				return string(r[:4]) + "***"
			}
			return "***"
		}
	}
	return value
}
