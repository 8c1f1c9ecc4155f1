package config

import "slices"

// SortSectionsByEntryKey reorders the entries inside every section by key
// using cmp, which returns a negative number when a sorts before b, zero when
// they are equal and a positive number otherwise. Section order is left
// untouched. Outstanding iterators are invalidated.
func (c *Config) SortSectionsByEntryKey(cmp func(a, b string) int) {
	for _, sec := range c.sections {
		slices.SortStableFunc(sec.entries, func(x, y entry) int {
			return cmp(x.key, y.key)
		})
	}
	c.gen++
}
