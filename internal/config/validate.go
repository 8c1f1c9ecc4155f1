package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotRepresentable is returned by CheckEntry for text that would not read
// back unchanged after Serialize.
var ErrNotRepresentable = errors.New("config: not representable in INI text")

// CheckEntry reports whether section, key and value survive Serialize and
// Parse unchanged. SetString accepts anything, so callers storing untrusted
// text should check it first.
//
// Rejected are line breaks anywhere, an empty section or key, a key that
// contains '=' or starts with '#', ';', '[' or a byte order mark, and keys or values with
// leading or trailing whitespace.
func CheckEntry(section, key, value string) error {
	switch {
	case section == "":
		return fmt.Errorf("%w: empty section name", ErrNotRepresentable)
	case strings.ContainsAny(section, "\r\n"):
		return fmt.Errorf("%w: section name %q contains a line break", ErrNotRepresentable, section)
	}

	switch {
	case key == "":
		return fmt.Errorf("%w: empty key", ErrNotRepresentable)
	case strings.ContainsAny(key, "\r\n"):
		return fmt.Errorf("%w: key %q contains a line break", ErrNotRepresentable, key)
	case strings.Contains(key, "="):
		return fmt.Errorf("%w: key %q contains '='", ErrNotRepresentable, key)
	case strings.TrimSpace(key) != key:
		return fmt.Errorf("%w: key %q has surrounding whitespace", ErrNotRepresentable, key)
	case strings.ContainsAny(key[:1], "#;["):
		return fmt.Errorf("%w: key %q starts with %q", ErrNotRepresentable, key, key[:1])
	case strings.HasPrefix(key, "\ufeff"):
		return fmt.Errorf("%w: key %q starts with a byte order mark", ErrNotRepresentable, key)
	}

	switch {
	case strings.ContainsAny(value, "\r\n"):
		return fmt.Errorf("%w: value %q contains a line break", ErrNotRepresentable, value)
	case strings.TrimSpace(value) != value:
		return fmt.Errorf("%w: value %q has surrounding whitespace", ErrNotRepresentable, value)
	}
	return nil
}
