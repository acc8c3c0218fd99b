/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/coobik/rpy-tools/internal/apperr"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectSortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.rpy"), "label b:\n")
	writeFile(t, filepath.Join(root, "a.rpy"), "label a:\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "skip me")
	writeFile(t, filepath.Join(root, "sub", "c.rpy"), "label c:\n")

	paths, warnings, err := Collect(root, ".rpy")
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	want := []string{
		filepath.Join(root, "a.rpy"),
		filepath.Join(root, "b.rpy"),
		filepath.Join(root, "sub", "c.rpy"),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
}

func TestCollectMissingRoot(t *testing.T) {
	_, _, err := Collect(filepath.Join(t.TempDir(), "nope"), ".rpy")
	if !errors.Is(err, apperr.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func TestCollectRootIsFile(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "file.rpy")
	writeFile(t, p, "label x:\n")
	_, _, err := Collect(p, ".rpy")
	if !errors.Is(err, apperr.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound for non-directory, got %v", err)
	}
}

func TestCollectStatFailureIsNotMissingInput(t *testing.T) {
	// A name longer than the filesystem limit makes os.Stat fail with
	// something other than "does not exist".
	root := filepath.Join(t.TempDir(), strings.Repeat("x", 300))
	_, _, err := Collect(root, ".rpy")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, apperr.ErrInputNotFound) {
		t.Fatalf("stat failure misreported as missing input: %v", err)
	}
}

func TestCollectEmptyDir(t *testing.T) {
	paths, warnings, err := Collect(t.TempDir(), ".rpy")
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(paths) != 0 || len(warnings) != 0 {
		t.Fatalf("expected empty result, got %v / %v", paths, warnings)
	}
}

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "out", "deep", "main.rpy")
	if err := WriteFileAtomic(path, []byte("label main:\n")); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "label main:\n" {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.rpy")
	if err := WriteFileAtomic(path, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("second")); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "second" {
		t.Fatalf("expected overwrite, got %q", b)
	}
	// No temp litter left behind.
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry in dir, got %d", len(entries))
	}
}
