/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package rpy

import (
	"strings"
	"testing"
)

func TestWriteJumpMenu(t *testing.T) {
	var b strings.Builder
	entries := []MenuEntry{
		{Title: BackTitle, Target: "main_index"},
		LabelEntry("intro"),
		LabelEntry("finale"),
	}
	if err := WriteJumpMenu(&b, "index_0", entries); err != nil {
		t.Fatalf("WriteJumpMenu error: %v", err)
	}
	want := `label index_0:

    menu:
        "< BACK":
            jump main_index

        "intro":
            jump intro

        "finale":
            jump finale

`
	if b.String() != want {
		t.Fatalf("unexpected menu output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteJumpMenuEmptyRendersPass(t *testing.T) {
	var b strings.Builder
	if err := WriteJumpMenu(&b, "main_index", nil); err != nil {
		t.Fatalf("WriteJumpMenu error: %v", err)
	}
	want := "label main_index:\n\n    pass\n"
	if b.String() != want {
		t.Fatalf("unexpected output %q, want %q", b.String(), want)
	}
}

func TestWriteInit(t *testing.T) {
	var b strings.Builder
	chars := []CharacterDef{
		{ID: "me", Name: "Me"},
		{ID: "girl", Name: "Girl"},
	}
	if err := WriteInit(&b, "main", chars); err != nil {
		t.Fatalf("WriteInit error: %v", err)
	}
	want := `init:
    $ mods["main"] = u"main"
    define me = Character(u"Me")
    define girl = Character(u"Girl")

`
	if b.String() != want {
		t.Fatalf("unexpected init block:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteInitEmptyRendersPass(t *testing.T) {
	var b strings.Builder
	if err := WriteInit(&b, "", nil); err != nil {
		t.Fatalf("WriteInit error: %v", err)
	}
	if b.String() != "init:\n    pass\n" {
		t.Fatalf("unexpected output %q", b.String())
	}
}

func TestWriteSay(t *testing.T) {
	var b strings.Builder
	if err := WriteSay(&b, "me", `Hello, "world"`); err != nil {
		t.Fatal(err)
	}
	if err := WriteSay(&b, "", "Night falls."); err != nil {
		t.Fatal(err)
	}
	want := "    me \"Hello, \\\"world\\\"\"\n    \"Night falls.\"\n"
	if b.String() != want {
		t.Fatalf("unexpected say output %q, want %q", b.String(), want)
	}
}

func TestWriteLabelDeclAndStatement(t *testing.T) {
	var b strings.Builder
	if err := WriteLabelDecl(&b, "chapter_1"); err != nil {
		t.Fatal(err)
	}
	if err := WriteStatement(&b, "scene bg street"); err != nil {
		t.Fatal(err)
	}
	want := "label chapter_1:\n\n    scene bg street\n"
	if b.String() != want {
		t.Fatalf("unexpected output %q, want %q", b.String(), want)
	}
}
