/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Package apperr defines the error kinds shared by both tools.
//
// Per-file problems (FileReadError) are collected as warnings and never
// abort a batch. Corpus-level integrity problems (DuplicateLabelError)
// exclude the affected entries and are reported together at the end.
// Configuration problems abort before any file is touched.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputNotFound reports a missing or non-directory input path.
	ErrInputNotFound = errors.New("input directory not found")

	// ErrInvalidConfiguration reports unusable flags or a malformed
	// configuration file.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrStructuralOrder reports executable screenplay content appearing
	// before any label when the dialect does not allow an implicit one.
	ErrStructuralOrder = errors.New("content before first label")
)

// InputNotFound wraps ErrInputNotFound with the offending path.
func InputNotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrInputNotFound, path)
}

// InvalidConfiguration wraps ErrInvalidConfiguration with a cause.
func InvalidConfiguration(cause error) error {
	return fmt.Errorf("%w: %v", ErrInvalidConfiguration, cause)
}

// FileReadError marks a single unreadable source file. Non-fatal: the
// rest of the batch continues and the error surfaces in the run summary.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// DuplicateLabelError reports one label name declared more than once
// across the corpus. Sites lists every declaration as "file:line" in
// discovery order; the name is excluded from generated menus.
type DuplicateLabelError struct {
	Name  string
	Sites []string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("duplicate label %q declared at %s", e.Name, strings.Join(e.Sites, ", "))
}

// IdentifierCollisionError reports two distinct display names collapsing
// to the same synthesized character identifier. Non-fatal: the later
// name is disambiguated with a numeric suffix.
type IdentifierCollisionError struct {
	ID       string   // the contested identifier
	Names    []string // display names that collapsed to it
	Resolved string   // identifier actually assigned to the later name
}

func (e *IdentifierCollisionError) Error() string {
	return fmt.Sprintf("character identifier %q claimed by %s; using %q",
		e.ID, strings.Join(quoteAll(e.Names), " and "), e.Resolved)
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
