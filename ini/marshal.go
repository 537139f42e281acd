// Copyright 2026 The cfgkit Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

// MarshalText serializes the file as INI text. The output is
// deterministic for a given file state: sections and pairs appear in
// stored order, a named section as "[name]\n", each pair as
// "key=value\n" with no quoting or escaping, and one blank line after
// a named section's pairs when another section follows. The global
// section emits no header and no trailing blank line.
//
// The error is always nil; it exists to satisfy
// encoding.TextMarshaler.
func (f *File) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	buf := make([]byte, 0, f.EncodedLen())
	last := len(f.sections) - 1
	for i := range f.sections {
		s := &f.sections[i]
		if s.name != "" {
			buf = append(buf, '[')
			buf = append(buf, s.name...)
			buf = append(buf, "]\n"...)
		}
		for _, p := range s.pairs {
			buf = append(buf, p.key...)
			buf = append(buf, '=')
			buf = append(buf, p.value...)
			buf = append(buf, '\n')
		}
		if s.name != "" && i < last {
			buf = append(buf, '\n')
		}
	}
	return buf, nil
}

// EncodedLen returns the exact number of bytes MarshalText would
// produce, without materializing the output. MarshalText allocates
// its result buffer once, at this size.
func (f *File) EncodedLen() int {
	if f == nil {
		return 0
	}
	n := 0
	last := len(f.sections) - 1
	for i := range f.sections {
		s := &f.sections[i]
		if s.name != "" {
			n += len(s.name) + 3 // [name]\n
		}
		for _, p := range s.pairs {
			n += len(p.key) + len(p.value) + 2 // key=value\n
		}
		if s.name != "" && i < last {
			n++ // separator blank line
		}
	}
	return n
}

// String returns the file as INI text.
func (f *File) String() string {
	b, _ := f.MarshalText()
	return string(b)
}
