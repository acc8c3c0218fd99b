/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Package fileutil collects source files and writes generated output.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coobik/rpy-tools/internal/apperr"
)

// Collect walks root recursively and returns the paths of regular files
// with the given extension, sorted for deterministic processing order.
//
// A missing or non-directory root fails with ErrInputNotFound; any
// other stat failure on the root is fatal as itself. Entries the walk
// cannot descend into are skipped and reported in warnings so one
// unreadable subtree does not abort the batch.
func Collect(root, ext string) (paths []string, warnings []error, err error) {
	info, statErr := os.Stat(root)
	switch {
	case errors.Is(statErr, fs.ErrNotExist):
		return nil, nil, apperr.InputNotFound(root)
	case statErr != nil:
		return nil, nil, fmt.Errorf("stat %s: %w", root, statErr)
	case !info.IsDir():
		return nil, nil, apperr.InputNotFound(root)
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, werr error) error {
		if werr != nil {
			warnings = append(warnings, &apperr.FileReadError{Path: path, Err: werr})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, warnings, fmt.Errorf("walk %s: %w", root, walkErr)
	}

	sort.Strings(paths)
	return paths, warnings, nil
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory, then renames it over the target. Parent directories are
// created as needed. A failed run never leaves a truncated output file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
