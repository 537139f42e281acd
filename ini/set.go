// Copyright 2026 The cfgkit Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"fmt"
	"os"
)

// FileSet is a list of files to obtain configuration from in
// descending order of precedence.
type FileSet []*File

// ParseFiles parses the files at the given paths as INI and returns a
// FileSet. If the returned error is nil, the returned set's length
// will be the same as the number of arguments. ParseFiles stops on
// the first error, but ignores missing file errors, instead filling
// the corresponding element of the set with a nil *File.
func ParseFiles(paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if os.IsNotExist(err) {
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %w", err)
		}
		f := New()
		if err := f.Parse(bytes.NewReader(data)); err != nil {
			return fset, fmt.Errorf("parse ini files: %s: %w", p, err)
		}
		fset = append(fset, f)
	}
	return fset, nil
}

// Get returns the value for key in the named section from the
// highest-precedence file that has it, or def if none does.
func (fset FileSet) Get(section, key, def string) string {
	for _, f := range fset {
		if v, ok := f.lookup(section, key); ok {
			return v
		}
	}
	return def
}

// GetInt is like Get with the value converted like File.GetInt.
func (fset FileSet) GetInt(section, key string, def int) int {
	for _, f := range fset {
		if v, ok := f.lookup(section, key); ok {
			return atoiPrefix(v)
		}
	}
	return def
}

// HasSection reports whether any file in the set has the named
// section.
func (fset FileSet) HasSection(name string) bool {
	for _, f := range fset {
		if f.HasSection(name) {
			return true
		}
	}
	return false
}

// HasKey reports whether any file in the set has key in the named
// section.
func (fset FileSet) HasKey(section, key string) bool {
	for _, f := range fset {
		if f.HasKey(section, key) {
			return true
		}
	}
	return false
}

// Set sets the key on the first file and removes it from all
// subsequent files, so the new value takes precedence no matter where
// the key was previously defined. Set panics if fset is empty. If
// fset[0] == nil, Set allocates a new File.
func (fset FileSet) Set(section, key, value string) error {
	if fset[0] == nil {
		fset[0] = New()
	}
	if err := fset[0].Set(section, key, value); err != nil {
		return err
	}
	// A miss in the lower-precedence files is not an error here.
	fset[1:].RemoveKey(section, key)
	return nil
}

// RemoveKey removes key from the named section in every file of the
// set. It returns ErrNotFound if no file had the key. Nil elements
// are ignored.
func (fset FileSet) RemoveKey(section, key string) error {
	var err error = ErrNotFound
	for _, f := range fset {
		if f == nil {
			continue
		}
		if f.RemoveKey(section, key) == nil {
			err = nil
		}
	}
	return err
}
