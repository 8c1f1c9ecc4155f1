package config

// SectionIter is an opaque position in a Config's section order.
//
// A SectionIter is only valid until the next structural change to the
// Config it came from (adding or removing a section or key). Overwriting the
// value of an existing key does not invalidate it. Using an invalidated
// iterator panics with ErrStaleIterator instead of silently reading the
// wrong section.
type SectionIter struct {
	cfg *Config
	idx int
	gen uint64
}

// Begin returns an iterator to the first section, or End() if c has none.
func (c *Config) Begin() SectionIter {
	return SectionIter{cfg: c, idx: 0, gen: c.gen}
}

// End returns the iterator one past the last section. It must not be
// dereferenced or advanced.
func (c *Config) End() SectionIter {
	return SectionIter{cfg: c, idx: len(c.sections), gen: c.gen}
}

// Equal reports whether it and other refer to the same position of the same
// config.
func (it SectionIter) Equal(other SectionIter) bool {
	return it.cfg == other.cfg && it.idx == other.idx && it.gen == other.gen
}

// Done reports whether it has reached the end of the section list.
func (it SectionIter) Done() bool {
	it.check()
	return it.idx >= len(it.cfg.sections)
}

// Next returns an iterator to the following section. Calling Next on End()
// panics.
func (it SectionIter) Next() SectionIter {
	it.check()
	if it.idx >= len(it.cfg.sections) {
		panic("config: Next called on end iterator")
	}
	it.idx++
	return it
}

// Name returns the name of the section at it. It panics on End().
func (it SectionIter) Name() string {
	it.check()
	if it.idx >= len(it.cfg.sections) {
		panic("config: Name called on end iterator")
	}
	return it.cfg.sections[it.idx].name
}

func (it SectionIter) check() {
	if it.cfg == nil || it.gen != it.cfg.gen {
		panic(ErrStaleIterator)
	}
}
