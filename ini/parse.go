// Copyright 2026 The cfgkit Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// asciiSpace is the whitespace the dialect trims: no Unicode.
const asciiSpace = " \t\r\n"

const maxLineLen = 1 << 20

// Parse reads INI text from r and merges it into f. Pairs before the
// first section header go to the global section; a header for an
// existing section reopens it. Malformed lines (no closing bracket,
// no equals sign, empty key) are skipped, never errors.
//
// Parse only fails when reading from r fails; f keeps whatever was
// parsed before the failure.
func (f *File) Parse(r io.Reader) error {
	f.ensureGlobal()
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLen)
	s.Split(scanLines)
	cur := 0 // the global section
	for s.Scan() {
		line := strings.Trim(s.Text(), asciiSpace)
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}
		if line[0] == '[' {
			end := strings.IndexByte(line, ']')
			if end < 0 {
				continue
			}
			name := strings.Trim(line[1:end], asciiSpace)
			cur = f.getOrCreateSection(name)
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			continue
		}
		key := strings.Trim(line[:eq], asciiSpace)
		if key == "" {
			continue
		}
		value := strings.Trim(line[eq+1:], asciiSpace)
		f.sections[cur].set(key, value)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("parse ini file: %w", err)
	}
	return nil
}

// ParseString merges INI text into f like Parse.
func (f *File) ParseString(text string) error {
	return f.Parse(strings.NewReader(text))
}

// UnmarshalText parses the INI data, replacing any sections or pairs
// in f.
func (f *File) UnmarshalText(data []byte) error {
	parsed := New()
	if err := parsed.Parse(bytes.NewReader(data)); err != nil {
		return err
	}
	*f = *parsed
	return nil
}

// scanLines is a bufio.SplitFunc that terminates lines on LF, CR, or
// CRLF. The standard bufio.ScanLines does not treat a lone CR as a
// terminator.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, "\r\n")
	if i < 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
	if data[i] == '\n' {
		return i + 1, data[:i], nil
	}
	// CR: a directly following LF belongs to the same line break.
	switch {
	case i+1 < len(data) && data[i+1] == '\n':
		return i + 2, data[:i], nil
	case i+1 < len(data) || atEOF:
		return i + 1, data[:i], nil
	default:
		// CR at the end of the buffer: read ahead for a possible LF.
		return 0, nil, nil
	}
}
