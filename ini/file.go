// Copyright 2026 The cfgkit Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// ReadFile reads the file at path and merges its contents into f
// like Parse.
func (f *File) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read ini file: %w", err)
	}
	if err := f.Parse(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("read ini file: %s: %w", path, err)
	}
	return nil
}

// WriteFile serializes f and writes it to path. The write is atomic:
// the text is staged in a temporary file that replaces path only
// after a complete write, so readers never observe a partial file.
func (f *File) WriteFile(path string) error {
	data, err := f.MarshalText()
	if err != nil {
		return fmt.Errorf("write ini file: %s: %w", path, err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	return nil
}
