// Copyright 2026 The cfgkit Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, source string) *File {
	t.Helper()
	f := New()
	if err := f.ParseString(source); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.ini")
	system := filepath.Join(dir, "system.ini")
	if err := os.WriteFile(user, []byte("[core]\neditor=vim\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(system, []byte("[core]\neditor=nano\npager=less\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fset, err := ParseFiles(user, filepath.Join(dir, "missing.ini"), system)
	if err != nil {
		t.Fatal("ParseFiles:", err)
	}
	if len(fset) != 3 {
		t.Fatalf("len(fset) = %d; want 3", len(fset))
	}
	if fset[1] != nil {
		t.Error("fset[1] != nil for missing file")
	}
	if got := fset.Get("core", "editor", ""); got != "vim" {
		t.Errorf("Get(core, editor) = %q; want vim", got)
	}
	if got := fset.Get("core", "pager", ""); got != "less" {
		t.Errorf("Get(core, pager) = %q; want less", got)
	}
	if got := fset.Get("core", "missing", "fallback"); got != "fallback" {
		t.Errorf("Get(core, missing) = %q; want fallback", got)
	}
}

func TestFileSetGet(t *testing.T) {
	fset := FileSet{
		mustParse(t, "[core]\na=high\n"),
		nil,
		mustParse(t, "[core]\na=low\nb=only\nn=17\n"),
	}
	if got := fset.Get("core", "a", ""); got != "high" {
		t.Errorf("Get(core, a) = %q; want high", got)
	}
	if got := fset.Get("core", "b", ""); got != "only" {
		t.Errorf("Get(core, b) = %q; want only", got)
	}
	if got := fset.GetInt("core", "n", 0); got != 17 {
		t.Errorf("GetInt(core, n) = %d; want 17", got)
	}
	if got := fset.GetInt("core", "absent", 3); got != 3 {
		t.Errorf("GetInt(core, absent) = %d; want 3", got)
	}
	if !fset.HasSection("core") {
		t.Error("HasSection(core) = false; want true")
	}
	if fset.HasSection("missing") {
		t.Error("HasSection(missing) = true; want false")
	}
	if !fset.HasKey("core", "b") {
		t.Error("HasKey(core, b) = false; want true")
	}
}

func TestFileSetSet(t *testing.T) {
	t.Run("ShadowsLowerFiles", func(t *testing.T) {
		fset := FileSet{
			mustParse(t, ""),
			mustParse(t, "[core]\na=low\n"),
		}
		if err := fset.Set("core", "a", "new"); err != nil {
			t.Fatal("Set:", err)
		}
		if got := fset.Get("core", "a", ""); got != "new" {
			t.Errorf("Get(core, a) = %q; want new", got)
		}
		// The shadowed definition is removed, not just overridden.
		if fset[1].HasKey("core", "a") {
			t.Error("lower file still has core.a after Set")
		}
	})
	t.Run("AllocatesFirstFile", func(t *testing.T) {
		fset := FileSet{nil, mustParse(t, "[core]\na=low\n")}
		if err := fset.Set("core", "a", "new"); err != nil {
			t.Fatal("Set:", err)
		}
		if fset[0] == nil {
			t.Fatal("fset[0] still nil after Set")
		}
		if diff := cmp.Diff("[core]\na=new\n", fset[0].String()); diff != "" {
			t.Errorf("fset[0] (-want +got):\n%s", diff)
		}
	})
}

func TestFileSetRemoveKey(t *testing.T) {
	fset := FileSet{
		mustParse(t, "[core]\na=1\n"),
		nil,
		mustParse(t, "[core]\na=2\nb=3\n"),
	}
	if err := fset.RemoveKey("core", "a"); err != nil {
		t.Fatal("RemoveKey:", err)
	}
	if fset.HasKey("core", "a") {
		t.Error("HasKey(core, a) = true after removal")
	}
	if !fset.HasKey("core", "b") {
		t.Error("HasKey(core, b) = false; want true")
	}
	if err := fset.RemoveKey("core", "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveKey(absent) = %v; want ErrNotFound", err)
	}
}
