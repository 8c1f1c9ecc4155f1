package prefs

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrentVersion is the preferences file schema version.
const CurrentVersion = 1

// Prefs represents the btconf preferences file.
// Flags given on the command line take precedence over these values.
type Prefs struct {
	Version        int    `yaml:"version"`
	DefaultConfig  string `yaml:"default_config,omitempty"` // Config file used when no path argument is given
	ChecksumSuffix string `yaml:"checksum_suffix"`          // Appended to the config path to find its checksum file
	SortKeys       bool   `yaml:"sort_keys"`                // Sort entries by key before every save
	ExportFormat   string `yaml:"export_format"`            // Default format for "btconf export"
	LogLevel       string `yaml:"log_level,omitempty"`      // Empty keeps logging silent
}

// Default returns preferences with default values.
func Default() *Prefs {
	return &Prefs{
		Version:        CurrentVersion,
		ChecksumSuffix: ".checksum",
		SortKeys:       false,
		ExportFormat:   "yaml",
	}
}

// fillDefaults replaces zero values left by a partial file.
func (p *Prefs) fillDefaults() {
	def := Default()
	if p.Version == 0 {
		p.Version = def.Version
	}
	if p.ChecksumSuffix == "" {
		p.ChecksumSuffix = def.ChecksumSuffix
	}
	if p.ExportFormat == "" {
		p.ExportFormat = def.ExportFormat
	}
}

// Keys lists the preference names accepted by Get and Set.
var Keys = []string{"default_config", "checksum_suffix", "sort_keys", "export_format", "log_level"}

// Get returns the string form of a preference.
func (p *Prefs) Get(key string) (string, error) {
	switch key {
	case "default_config":
		return p.DefaultConfig, nil
	case "checksum_suffix":
		return p.ChecksumSuffix, nil
	case "sort_keys":
		return strconv.FormatBool(p.SortKeys), nil
	case "export_format":
		return p.ExportFormat, nil
	case "log_level":
		return p.LogLevel, nil
	default:
		return "", unknownKey(key)
	}
}

// Set updates a preference from its string form.
func (p *Prefs) Set(key, value string) error {
	switch key {
	case "default_config":
		p.DefaultConfig = value
	case "checksum_suffix":
		if value == "" {
			return fmt.Errorf("checksum_suffix cannot be empty")
		}
		p.ChecksumSuffix = value
	case "sort_keys":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("sort_keys: must be true or false, got %q", value)
		}
		p.SortKeys = b
	case "export_format":
		p.ExportFormat = value
	case "log_level":
		switch value {
		case "", "debug", "info", "warn", "error":
			p.LogLevel = value
		default:
			return fmt.Errorf("log_level: invalid value %q (allowed: debug, info, warn, error)", value)
		}
	default:
		return unknownKey(key)
	}
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown preference %q (known: %s)", key, strings.Join(Keys, ", "))
}
