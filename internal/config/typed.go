package config

import "strconv"

// Literal tokens used to store boolean values.
const (
	TrueToken  = "true"
	FalseToken = "false"
)

// GetInt returns the integer value of key in section. Prefixes 0x, 0o, 0b and
// a leading 0 select the base. If the key is missing or its value is not a
// complete integer, def is returned.
func (c *Config) GetInt(section, key string, def int) int {
	v, ok := c.Lookup(section, key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 0, strconv.IntSize)
	if err != nil {
		return def
	}
	return int(n)
}

// GetUint16 returns the value of key in section as an unsigned 16-bit
// integer, or def if missing, malformed or out of range.
func (c *Config) GetUint16(section, key string, def uint16) uint16 {
	v, ok := c.Lookup(section, key)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(v, 0, 16)
	if err != nil {
		return def
	}
	return uint16(n)
}

// GetUint64 returns the value of key in section as an unsigned 64-bit
// integer, or def if missing or malformed.
func (c *Config) GetUint64(section, key string, def uint64) uint64 {
	v, ok := c.Lookup(section, key)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(v, 0, 64)
	if err != nil {
		return def
	}
	return n
}

// GetBool returns true for TrueToken and false for FalseToken. Any other
// value, or a missing key, yields def.
func (c *Config) GetBool(section, key string, def bool) bool {
	v, ok := c.Lookup(section, key)
	if !ok {
		return def
	}
	switch v {
	case TrueToken:
		return true
	case FalseToken:
		return false
	default:
		return def
	}
}

// SetInt stores value in decimal form.
func (c *Config) SetInt(section, key string, value int) {
	c.SetString(section, key, strconv.Itoa(value))
}

// SetUint16 stores value in decimal form.
func (c *Config) SetUint16(section, key string, value uint16) {
	c.SetString(section, key, strconv.FormatUint(uint64(value), 10))
}

// SetUint64 stores value in decimal form.
func (c *Config) SetUint64(section, key string, value uint64) {
	c.SetString(section, key, strconv.FormatUint(value, 10))
}

// SetBool stores TrueToken or FalseToken.
func (c *Config) SetBool(section, key string, value bool) {
	if value {
		c.SetString(section, key, TrueToken)
		return
	}
	c.SetString(section, key, FalseToken)
}
