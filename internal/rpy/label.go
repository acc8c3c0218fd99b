/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Package rpy knows the Ren'Py script dialect: label declarations,
// jump menus, init blocks, and say statements.
package rpy

import (
	"regexp"
	"strings"
)

const (
	// Ext is the Ren'Py script file extension.
	Ext = ".rpy"

	// Indent is one indentation level in generated script.
	Indent = "    "

	labelKeyword = "label"
)

// Label is a named jump target discovered in a script file.
type Label struct {
	Name string
	File string
	Line int // 1-based line number of the declaration
}

// ExtractLabel returns the label name declared on line, or "" if the
// line is not a top-level label declaration. Only unindented
// "label <name>:" lines count; indented (nested) labels are local to
// their parent and not navigable by plain jumps.
func ExtractLabel(line string) string {
	if !strings.HasPrefix(line, labelKeyword) {
		return ""
	}
	colon := strings.IndexByte(line, ':')
	if colon < len(labelKeyword)+2 {
		return ""
	}
	return strings.TrimSpace(line[len(labelKeyword):colon])
}

// NormalizeLabel makes name usable as a label: spaces and colons become
// underscores, digit-led names get a "label_" prefix. An empty name
// falls back to fallback.
func NormalizeLabel(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, ":", "_")
	if name[0] >= '0' && name[0] <= '9' {
		return labelKeyword + "_" + name
	}
	return name
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether s is a valid script-level identifier.
func IsIdentifier(s string) bool { return identRe.MatchString(s) }

// EscapeText escapes a phrase for use inside a double-quoted say
// statement.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
