/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package rpy

import (
	"fmt"
	"io"
)

// MenuEntry is one choice in a jump menu: a quoted title and the label
// it jumps to.
type MenuEntry struct {
	Title  string
	Target string
}

// LabelEntry builds a menu entry whose title is the label name itself.
func LabelEntry(name string) MenuEntry { return MenuEntry{Title: name, Target: name} }

// Navigation entry titles.
const (
	BackTitle = "< BACK"
	PrevTitle = "< PREV"
	NextTitle = "NEXT >"
)

// WriteJumpMenu renders a label holding one menu with the given entries,
// in order. With no entries the label body is a bare pass so the output
// stays a valid script.
func WriteJumpMenu(w io.Writer, top string, entries []MenuEntry) error {
	if _, err := fmt.Fprintf(w, "%s %s:\n\n", labelKeyword, top); err != nil {
		return err
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintf(w, "%spass\n", Indent)
		return err
	}

	if _, err := fmt.Fprintf(w, "%smenu:\n", Indent); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s%s\"%s\":\n", Indent, Indent, EscapeText(e.Title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s%sjump %s\n\n", Indent, Indent, Indent, e.Target); err != nil {
			return err
		}
	}
	return nil
}

// CharacterDef is one character declaration for an init block.
type CharacterDef struct {
	ID   string
	Name string // display name shown by the engine
}

// WriteInit renders an init block declaring every character, in order.
// modID, when set, registers the generated script with the mod loader
// the original tooling targets.
func WriteInit(w io.Writer, modID string, chars []CharacterDef) error {
	if _, err := io.WriteString(w, "init:\n"); err != nil {
		return err
	}

	if modID == "" && len(chars) == 0 {
		_, err := fmt.Fprintf(w, "%spass\n", Indent)
		return err
	}

	if modID != "" {
		if _, err := fmt.Fprintf(w, "%s$ mods[\"%s\"] = u\"%s\"\n", Indent, modID, modID); err != nil {
			return err
		}
	}
	for _, c := range chars {
		if _, err := fmt.Fprintf(w, "%sdefine %s = Character(u\"%s\")\n", Indent, c.ID, EscapeText(c.Name)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteLabelDecl renders a top-level label declaration.
func WriteLabelDecl(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "%s %s:\n\n", labelKeyword, name)
	return err
}

// WriteSay renders one say statement. An empty speakerID produces
// narration (an unattributed say).
func WriteSay(w io.Writer, speakerID, text string) error {
	if speakerID == "" {
		_, err := fmt.Fprintf(w, "%s\"%s\"\n", Indent, EscapeText(text))
		return err
	}
	_, err := fmt.Fprintf(w, "%s%s \"%s\"\n", Indent, speakerID, EscapeText(text))
	return err
}

// WriteStatement renders one raw statement (scene/show/play directives
// pass through the generator verbatim).
func WriteStatement(w io.Writer, stmt string) error {
	_, err := fmt.Fprintf(w, "%s%s\n", Indent, stmt)
	return err
}

// WritePass renders a bare pass for otherwise empty label bodies.
func WritePass(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%spass\n", Indent)
	return err
}
