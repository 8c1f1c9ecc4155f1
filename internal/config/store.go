package config

// DefaultSection is the section that holds key/value pairs appearing before
// any section header, or set explicitly under this name.
const DefaultSection = "Global"

type entry struct {
	key   string
	value string
}

type sectionNode struct {
	name    string
	entries []entry
}

func (s *sectionNode) index(key string) int {
	for i := range s.entries {
		if s.entries[i].key == key {
			return i
		}
	}
	return -1
}

func (s *sectionNode) clone() *sectionNode {
	out := &sectionNode{
		name:    s.name,
		entries: make([]entry, len(s.entries)),
	}
	copy(out.entries, s.entries)
	return out
}

// Config is an ordered, in-memory INI document.
//
// Sections keep the order in which they were first seen (parsed or set) and
// entries keep their insertion order within a section. A section never
// exists without entries: removing the last key of a section removes the
// section too.
//
// Config is not safe for concurrent use. Callers sharing an instance across
// goroutines must serialize access themselves.
type Config struct {
	sections []*sectionNode
	// gen counts structural mutations; SectionIter values compare against it.
	gen uint64
}

// New returns an empty config that is not backed by a file.
func New() *Config {
	return &Config{}
}

// Clone returns a deep copy of c. Changes to the copy are never reflected in
// c and vice versa.
func (c *Config) Clone() *Config {
	out := &Config{sections: make([]*sectionNode, len(c.sections))}
	for i, sec := range c.sections {
		out.sections[i] = sec.clone()
	}
	return out
}

// Len returns the number of sections in c.
func (c *Config) Len() int {
	return len(c.sections)
}

func (c *Config) find(name string) (int, *sectionNode) {
	for i, sec := range c.sections {
		if sec.name == name {
			return i, sec
		}
	}
	return -1, nil
}

// ensure returns the section named name, appending an empty one if absent.
func (c *Config) ensure(name string) *sectionNode {
	if _, sec := c.find(name); sec != nil {
		return sec
	}
	sec := &sectionNode{name: name}
	c.sections = append(c.sections, sec)
	c.gen++
	return sec
}

// HasSection reports whether c contains a section named name with at least
// one key/value pair.
func (c *Config) HasSection(name string) bool {
	_, sec := c.find(name)
	return sec != nil && len(sec.entries) > 0
}

// HasKey reports whether key exists under section.
func (c *Config) HasKey(section, key string) bool {
	_, sec := c.find(section)
	return sec != nil && sec.index(key) >= 0
}

// Lookup returns the raw string value for key in section and whether it was
// found.
func (c *Config) Lookup(section, key string) (string, bool) {
	_, sec := c.find(section)
	if sec == nil {
		return "", false
	}
	i := sec.index(key)
	if i < 0 {
		return "", false
	}
	return sec.entries[i].value, true
}

// GetString returns the value for key in section, or def if either does not
// exist.
func (c *Config) GetString(section, key, def string) string {
	if v, ok := c.Lookup(section, key); ok {
		return v
	}
	return def
}

// SetString sets key in section to value, creating the section and key as
// needed. Overwriting an existing key keeps its position.
//
// Any text is stored, but only entries accepted by CheckEntry read back
// unchanged after Save. A value with a line break, for example, is split
// into several lines when the file is parsed again.
func (c *Config) SetString(section, key, value string) {
	sec := c.ensure(section)
	if i := sec.index(key); i >= 0 {
		sec.entries[i].value = value
		return
	}
	sec.entries = append(sec.entries, entry{key: key, value: value})
	c.gen++
}

// RemoveSection removes section and all of its keys. It reports whether the
// section was found.
func (c *Config) RemoveSection(name string) bool {
	i, sec := c.find(name)
	if sec == nil {
		return false
	}
	c.sections = append(c.sections[:i], c.sections[i+1:]...)
	c.gen++
	return true
}

// RemoveKey removes key from section and reports whether it was found. A
// section left without keys is removed as well.
func (c *Config) RemoveKey(section, key string) bool {
	si, sec := c.find(section)
	if sec == nil {
		return false
	}
	ki := sec.index(key)
	if ki < 0 {
		return false
	}
	sec.entries = append(sec.entries[:ki], sec.entries[ki+1:]...)
	if len(sec.entries) == 0 {
		c.sections = append(c.sections[:si], c.sections[si+1:]...)
	}
	c.gen++
	return true
}

// Sections returns the section names in order.
func (c *Config) Sections() []string {
	names := make([]string, 0, len(c.sections))
	for _, sec := range c.sections {
		names = append(names, sec.name)
	}
	return names
}

// Keys returns the keys of section in order, or nil if it does not exist.
func (c *Config) Keys(section string) []string {
	_, sec := c.find(section)
	if sec == nil {
		return nil
	}
	keys := make([]string, 0, len(sec.entries))
	for _, e := range sec.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// Equal reports whether c and other hold the same sections, keys and values
// in the same order.
func (c *Config) Equal(other *Config) bool {
	if len(c.sections) != len(other.sections) {
		return false
	}
	for i, sec := range c.sections {
		o := other.sections[i]
		if sec.name != o.name || len(sec.entries) != len(o.entries) {
			return false
		}
		for j := range sec.entries {
			if sec.entries[j] != o.entries[j] {
				return false
			}
		}
	}
	return true
}

// prune drops sections that hold no entries.
func (c *Config) prune() {
	kept := c.sections[:0]
	for _, sec := range c.sections {
		if len(sec.entries) > 0 {
			kept = append(kept, sec)
		}
	}
	for i := len(kept); i < len(c.sections); i++ {
		c.sections[i] = nil
	}
	if len(kept) != len(c.sections) {
		c.gen++
	}
	c.sections = kept
}
