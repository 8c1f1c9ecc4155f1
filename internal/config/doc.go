// Package config implements an in-memory INI configuration file with load,
// query, mutation, iteration and save, plus a checksum sidecar file used to
// detect tampering or corruption of the saved config.
//
// # File Format
//
//	# comment
//	Name = adapter        <- belongs to the "Global" section
//	[Adapter]
//	Address = 00:11:22:33:44:55
//	ScanMode = 2
//
// Key/value pairs that appear before any header land in DefaultSection.
// Sections that appear more than once are merged, and a repeated key keeps
// the last value. Section names and keys are case sensitive.
//
// Lines are trimmed and there is no quoting or escaping, so a value cannot
// keep surrounding whitespace or span lines, and a key cannot contain '='
// or begin with a comment or header character. The store accepts such text
// in memory; CheckEntry reports whether an entry will survive a save and
// reload.
//
// # Empty Sections
//
// A section without key/value pairs does not exist. Headers with no entries
// are dropped after parsing, and removing the last key of a section removes
// the section. HasSection and iteration therefore never observe an empty
// section.
//
// # Usage Example
//
//	cfg, err := config.Load("/data/misc/bluedroid/bt_config.conf")
//	if err != nil {
//	    cfg = config.New()
//	}
//	mode := cfg.GetInt("Adapter", "ScanMode", 0)
//	cfg.SetBool("Adapter", "Discoverable", true)
//
//	for it := cfg.Begin(); !it.Equal(cfg.End()); it = it.Next() {
//	    fmt.Println(it.Name())
//	}
//
//	if err := cfg.Save(path); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// A Config is not synchronized. Callers must serialize access to a shared
// instance. Iterators are invalidated by any structural change.
package config
