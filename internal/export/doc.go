// Package export renders a config.Config in other formats for scripting
// and inspection: YAML and JSON keep section and key order, TOML is sorted.
package export
