package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/config"
)

// Format names an export encoding.
type Format string

const (
	FormatINI  Format = "ini"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatINI, FormatYAML, FormatTOML, FormatJSON}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format %q (expected one of: ini, yaml, toml, json)", s)
}

// Section is the order-preserving JSON shape of one config section.
type Section struct {
	Name    string  `json:"section"`
	Entries []Entry `json:"entries"`
}

// Entry is one key/value pair in JSON output.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Write encodes cfg to w in the requested format.
func Write(w io.Writer, cfg *config.Config, format Format) error {
	switch format {
	case FormatINI:
		_, err := cfg.WriteTo(w)
		return err
	case FormatYAML:
		return writeYAML(w, cfg)
	case FormatTOML:
		return writeTOML(w, cfg)
	case FormatJSON:
		return writeJSON(w, cfg)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// writeYAML builds the document as a yaml.Node tree so that section and key
// order match the config instead of yaml's sorted map output.
func writeYAML(w io.Writer, cfg *config.Config) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range cfg.Sections() {
		sec := &yaml.Node{Kind: yaml.MappingNode}
		for _, key := range cfg.Keys(name) {
			value, _ := cfg.Lookup(name, key)
			sec.Content = append(sec.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			sec,
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// writeTOML emits one table per section. TOML tables are keyed maps, so
// the output is sorted by section and key name.
func writeTOML(w io.Writer, cfg *config.Config) error {
	doc := make(map[string]map[string]string, cfg.Len())
	for _, name := range cfg.Sections() {
		table := make(map[string]string)
		for _, key := range cfg.Keys(name) {
			table[key], _ = cfg.Lookup(name, key)
		}
		doc[name] = table
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encoding toml: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, cfg *config.Config) error {
	out := make([]Section, 0, cfg.Len())
	for _, name := range cfg.Sections() {
		sec := Section{Name: name, Entries: []Entry{}}
		for _, key := range cfg.Keys(name) {
			value, _ := cfg.Lookup(name, key)
			sec.Entries = append(sec.Entries, Entry{Key: key, Value: value})
		}
		out = append(out, sec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
