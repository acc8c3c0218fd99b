/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package rpy

import "testing"

func TestExtractLabel(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"label intro:", "intro"},
		{"label  chapter_2 :", "chapter_2"},
		{"label x:", "x"}, // colon exactly at keyword length + 2 is accepted
		{"", ""},
		{"labels:", ""},            // colon too close to the keyword
		{"label:", ""},             // no name
		{"    label nested:", ""},  // indented labels are local
		{"# label commented:", ""}, // not at line start
		{"jump intro", ""},         // no colon
		{"scene bg room", ""},      // unrelated statement
		{"label the_end: # done", "the_end"},
	}
	for _, c := range cases {
		if got := ExtractLabel(c.line); got != c.want {
			t.Fatalf("ExtractLabel(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		name, fallback, want string
	}{
		{"intro", "main", "intro"},
		{"  intro  ", "main", "intro"},
		{"", "main", "main"},
		{"   ", "main", "main"},
		{"my chapter", "main", "my_chapter"},
		{"a:b", "main", "a_b"},
		{"2nd_act", "main", "label_2nd_act"},
		{"act 2: finale", "main", "act_2__finale"},
	}
	for _, c := range cases {
		if got := NormalizeLabel(c.name, c.fallback); got != c.want {
			t.Fatalf("NormalizeLabel(%q, %q) = %q, want %q", c.name, c.fallback, got, c.want)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	valid := []string{"me", "girl", "ch_0", "_x", "Boy2"}
	invalid := []string{"", "2nd", "me too", "café", "a-b"}
	for _, s := range valid {
		if !IsIdentifier(s) {
			t.Fatalf("IsIdentifier(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsIdentifier(s) {
			t.Fatalf("IsIdentifier(%q) = true, want false", s)
		}
	}
}

func TestEscapeText(t *testing.T) {
	cases := []struct{ in, want string }{
		{`plain`, `plain`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
		{"two\nlines", `two\nlines`},
	}
	for _, c := range cases {
		if got := EscapeText(c.in); got != c.want {
			t.Fatalf("EscapeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
