/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Package screenplay parses loosely structured plain-text screenplay
// files into ordered script elements and resolves speakers through a
// character registry.
package screenplay

// ElementType indicates the kind of a script element.
type ElementType int

const (
	// ElementDialogue is a spoken (or narrated, when Speaker is empty)
	// phrase: SPEAKER: text
	ElementDialogue ElementType = iota
	// ElementLabel is a jump-target marker: :: name
	ElementLabel
	// ElementDirective is a recognized stage direction passed through
	// verbatim: scene/show/hide/with/play/stop/pause/jump ...
	ElementDirective
)

// Element is one parsed screenplay element. Order within a Script is
// the execution order of the generated script.
type Element struct {
	Type    ElementType
	Speaker string // display name; empty means narration
	Text    string // phrase or verbatim directive text
	Name    string // label name, for ElementLabel
	Line    int    // 1-based line of the first source line
}

// Script is the parse result for one screenplay file.
type Script struct {
	Elements []Element
	// Speakers lists distinct non-empty speaker display names in order
	// of first appearance. Identifier resolution happens afterwards, in
	// a separate registry pass.
	Speakers []string
}
