// Copyright 2026 The cfgkit Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"strconv"
)

// A File is an in-memory INI document. The zero value is an empty
// file; New returns a file with the global section already present.
// Files can be read by multiple concurrent goroutines, but mutation
// requires exclusive access.
type File struct {
	sections []section
}

type section struct {
	name  string // "" is the global section
	pairs []pair
}

type pair struct {
	key   string
	value string
}

var (
	// ErrNotFound is returned by removal operations when no section
	// or key matches.
	ErrNotFound = errors.New("ini: not found")

	// ErrInvalidArgument is returned when an operation is given an
	// argument it cannot act on, like setting an empty key or
	// removing the global section.
	ErrInvalidArgument = errors.New("ini: invalid argument")
)

// New returns an empty File containing only the global section.
func New() *File {
	return &File{sections: []section{{}}}
}

// ensureGlobal keeps the global section present and first. The zero
// File has no sections until it is first mutated or parsed into.
func (f *File) ensureGlobal() {
	if len(f.sections) == 0 {
		f.sections = append(f.sections, section{})
	}
}

func (f *File) findSection(name string) int {
	for i := range f.sections {
		if f.sections[i].name == name {
			return i
		}
	}
	return -1
}

// getOrCreateSection returns the index of the named section, creating
// it at the end of the section sequence if it does not exist.
func (f *File) getOrCreateSection(name string) int {
	f.ensureGlobal()
	if i := f.findSection(name); i >= 0 {
		return i
	}
	f.sections = append(f.sections, section{name: name})
	return len(f.sections) - 1
}

func (s *section) findPair(key string) int {
	for i := range s.pairs {
		if s.pairs[i].key == key {
			return i
		}
	}
	return -1
}

// set overwrites an existing key's value in place, or appends a new
// pair at the end of the section.
func (s *section) set(key, value string) {
	if i := s.findPair(key); i >= 0 {
		s.pairs[i].value = value
		return
	}
	s.pairs = append(s.pairs, pair{key: key, value: value})
}

func (f *File) lookup(name, key string) (_ string, ok bool) {
	if f == nil {
		return "", false
	}
	i := f.findSection(name)
	if i < 0 {
		return "", false
	}
	s := &f.sections[i]
	j := s.findPair(key)
	if j < 0 {
		return "", false
	}
	return s.pairs[j].value, true
}

// Get returns the value associated with key in the named section, or
// def if the section or key does not exist. Passing an empty section
// name reads the global section. Get never fails and may be called on
// a nil File.
func (f *File) Get(section, key, def string) string {
	v, ok := f.lookup(section, key)
	if !ok {
		return def
	}
	return v
}

// GetInt returns the value associated with key in the named section
// converted to an integer, or def if the section or key does not
// exist. The conversion reads an optional run of spaces and tabs, an
// optional sign, then a maximal run of decimal digits, ignoring
// anything after them. A value that is present but contains no digits
// converts to 0; def is only returned for a missing key.
func (f *File) GetInt(section, key string, def int) int {
	v, ok := f.lookup(section, key)
	if !ok {
		return def
	}
	return atoiPrefix(v)
}

// atoiPrefix converts the longest leading decimal run of s after
// optional spaces, tabs, and a sign. No digits converts to 0.
func atoiPrefix(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	sign := 1
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	n := 0
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return sign * n
}

// Set sets key to value in the named section, creating the section at
// the end of the file if it does not exist. An existing key keeps its
// position in the section; only its value changes. Passing an empty
// section name writes to the global section. Set returns
// ErrInvalidArgument if key is empty.
func (f *File) Set(section, key, value string) error {
	if key == "" {
		return ErrInvalidArgument
	}
	i := f.getOrCreateSection(section)
	f.sections[i].set(key, value)
	return nil
}

// SetInt sets key in the named section to the minimal decimal
// rendering of value.
func (f *File) SetInt(section, key string, value int) error {
	return f.Set(section, key, strconv.Itoa(value))
}

// HasSection reports whether the named section exists. The global
// section always exists, so HasSection("") reports true on any
// non-nil File.
func (f *File) HasSection(name string) bool {
	if f == nil {
		return false
	}
	if name == "" {
		return true
	}
	return f.findSection(name) >= 0
}

// HasKey reports whether key exists in the named section.
func (f *File) HasKey(section, key string) bool {
	_, ok := f.lookup(section, key)
	return ok
}

// RemoveSection removes the named section and all of its pairs.
// It returns ErrInvalidArgument for the global section, which cannot
// be removed, and ErrNotFound if no section has the given name.
func (f *File) RemoveSection(name string) error {
	if name == "" {
		return ErrInvalidArgument
	}
	i := f.findSection(name)
	if i < 0 {
		return ErrNotFound
	}
	copy(f.sections[i:], f.sections[i+1:])
	// Zero out truncated element for garbage collection.
	f.sections[len(f.sections)-1] = section{}
	f.sections = f.sections[:len(f.sections)-1]
	return nil
}

// RemoveKey removes key from the named section, preserving the order
// of the remaining pairs. It returns ErrNotFound if the section or
// key does not exist.
func (f *File) RemoveKey(section, key string) error {
	i := f.findSection(section)
	if i < 0 {
		return ErrNotFound
	}
	s := &f.sections[i]
	j := s.findPair(key)
	if j < 0 {
		return ErrNotFound
	}
	copy(s.pairs[j:], s.pairs[j+1:])
	// Zero out truncated element for garbage collection.
	s.pairs[len(s.pairs)-1] = pair{}
	s.pairs = s.pairs[:len(s.pairs)-1]
	return nil
}

// Sections returns the section names in stored order. The global
// section is reported as "". A zero File that has never been mutated
// returns nil.
func (f *File) Sections() []string {
	if f == nil || len(f.sections) == 0 {
		return nil
	}
	names := make([]string, 0, len(f.sections))
	for i := range f.sections {
		names = append(names, f.sections[i].name)
	}
	return names
}

// Keys returns the keys of the named section in stored order, or nil
// if the section does not exist.
func (f *File) Keys(section string) []string {
	if f == nil {
		return nil
	}
	i := f.findSection(section)
	if i < 0 {
		return nil
	}
	s := &f.sections[i]
	keys := make([]string, 0, len(s.pairs))
	for _, p := range s.pairs {
		keys = append(keys, p.key)
	}
	return keys
}
