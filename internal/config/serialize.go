package config

import (
	"io"
	"strings"
)

// Serialize renders c as INI text.
//
// When DefaultSection is the first section its entries are written without
// a header so they read back as top-level pairs. Every other section gets a
// "[name]" header. Entries are written as "key=value" and sections are
// separated by a blank line. Comments and formatting of a loaded file are
// not reproduced.
func (c *Config) Serialize() string {
	var b strings.Builder
	for i, sec := range c.sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i > 0 || sec.name != DefaultSection {
			b.WriteByte('[')
			b.WriteString(sec.name)
			b.WriteString("]\n")
		}
		for _, e := range sec.entries {
			b.WriteString(e.key)
			b.WriteByte('=')
			b.WriteString(e.value)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WriteTo writes the serialized form of c to w.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.Serialize())
	return int64(n), err
}
