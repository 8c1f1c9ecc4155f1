package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/logging"
)

// maxLineSize bounds a single line of config text. Longer lines are
// skipped.
const maxLineSize = 1 << 20

// Parse reads INI text from r.
//
// Lines are trimmed before they are interpreted. Empty lines and lines
// starting with '#' or ';' are ignored. "[name]" selects a section, merging
// with any earlier section of the same name. "key = value" assigns to the
// current section, or to DefaultSection before the first header; the value
// is everything after the first '='. Any other line, including one longer
// than 1 MiB, is skipped. Only a failure to read r is reported as an error.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	current := DefaultSection

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, tooLong, err := readLine(br)
		if len(raw) > 0 || tooLong {
			lineNo++
			switch {
			case tooLong:
				logging.LogSkippedLine(lineNo, "", "line too long")
			case lineNo == 1:
				current = parseLine(cfg, current, lineNo, strings.TrimPrefix(string(raw), "\ufeff"))
			default:
				current = parseLine(cfg, current, lineNo, string(raw))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading config line %d: %w", lineNo+1, err)
		}
	}

	// Headers without entries do not count as sections.
	cfg.prune()
	return cfg, nil
}

// readLine returns the next line including its terminator. A line over
// maxLineSize is consumed and discarded, reported through tooLong.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return line, tooLong, err
	}
}

// parseLine applies one line of text to cfg and returns the section that
// following entries belong to.
func parseLine(cfg *Config, current string, lineNo int, raw string) string {
	line := strings.TrimSpace(raw)
	if line == "" || line[0] == '#' || line[0] == ';' {
		return current
	}

	if line[0] == '[' {
		if len(line) < 2 || line[len(line)-1] != ']' {
			logging.LogSkippedLine(lineNo, line, "unterminated section header")
			return current
		}
		name := line[1 : len(line)-1]
		if name == "" {
			logging.LogSkippedLine(lineNo, line, "empty section name")
			return current
		}
		cfg.ensure(name)
		return name
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		logging.LogSkippedLine(lineNo, line, "no '=' separator")
		return current
	}
	key = strings.TrimSpace(key)
	if key == "" {
		logging.LogSkippedLine(lineNo, line, "empty key")
		return current
	}
	cfg.SetString(current, key, strings.TrimSpace(value))
	return current
}

// ParseString parses INI text held in memory.
func ParseString(text string) (*Config, error) {
	return Parse(strings.NewReader(text))
}

// Load reads and parses the config file at path. It returns a nil Config
// and an *Error if the file cannot be opened or read.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError("load", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, newError("load", path, err)
	}

	logging.LogLoad(path, cfg.Len())
	return cfg, nil
}
