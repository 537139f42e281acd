// Copyright 2026 The cfgkit Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package watch reloads INI files when they change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"zombiezen.com/go/log"

	"github.com/cfgkit/cfgkit/ini"
)

// Debounce is how long Watch waits after a file event before
// reloading, so editors and atomic-rename writers that produce bursts
// of events trigger a single reload.
const Debounce = 100 * time.Millisecond

// Watch parses the INI file at path, hands it to apply, then blocks
// watching the file for changes, calling apply with a freshly parsed
// File after every change. Load failures after the first are logged
// and skipped, since a change may be observed mid-write; the next
// event retries.
//
// Watch watches the file's parent directory, so replacing the file by
// atomic rename (as File.WriteFile does) is observed. It returns when
// ctx is done.
func Watch(ctx context.Context, path string, apply func(*ini.File)) error {
	f := ini.New()
	if err := f.ReadFile(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	apply(f)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	log.Debugf(ctx, "watching %s for changes", path)

	var debounce *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(Debounce)
				defer debounce.Stop()
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(Debounce)
			}
			fire = debounce.C
		case <-fire:
			fire = nil
			f := ini.New()
			if err := f.ReadFile(path); err != nil {
				log.Warnf(ctx, "Error reloading %s (will retry on next change): %v", path, err)
				continue
			}
			log.Debugf(ctx, "reloaded %s", path)
			apply(f)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnf(ctx, "Error watching %s: %v", path, err)
		}
	}
}
