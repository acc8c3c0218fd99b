/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package screenplay

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/coobik/rpy-tools/internal/apperr"
)

// Options controls parsing.
type Options struct {
	// RequireLeadingLabel rejects executable content before the first
	// ":: name" marker. Off by default: the generator always inserts a
	// synthetic chapter label, so free-form openings are fine.
	RequireLeadingLabel bool
}

// Ellipsis stands in for an empty phrase after "SPEAKER:".
const Ellipsis = "..."

var (
	reLabel    = regexp.MustCompile(`^::\s*(.*)$`)
	reDialogue = regexp.MustCompile(`^([\p{L}\p{N}_' .-]{1,64}):\s*(.*)$`)
)

// Directive keywords recognized at the start of a line and passed
// through to the generated script verbatim.
var directiveWords = map[string]bool{
	"scene": true,
	"show":  true,
	"hide":  true,
	"with":  true,
	"play":  true,
	"stop":  true,
	"pause": true,
	"jump":  true,
}

// Parse reads one screenplay and returns its ordered elements.
//
// The grammar is line-oriented and tolerant. In priority order:
//   - blank line: separator, closes the current dialogue
//   - "#" or ";" prefix: comment
//   - ":: name": label marker
//   - directive keyword first word: stage direction, kept verbatim
//   - "SPEAKER: text": dialogue (empty text becomes "...")
//   - leading-colon line: narration with the colons stripped
//   - anything else: continuation of the open dialogue, or narration
//     when none is open
//
// A line that matches nothing never fails the parse; authors write
// free-form text.
func Parse(r io.Reader, opts Options) (*Script, error) {
	s := &Script{}
	seen := map[string]bool{}
	lineNo := 0
	sawLabel := false
	current := -1 // index into s.Elements of the open dialogue, -1 if none

	appendElement := func(e Element) {
		s.Elements = append(s.Elements, e)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		trim := strings.TrimSpace(strings.TrimRight(sc.Text(), "\r\n"))

		if trim == "" {
			current = -1
			continue
		}
		if strings.HasPrefix(trim, "#") || strings.HasPrefix(trim, ";") {
			current = -1
			continue
		}

		if m := reLabel.FindStringSubmatch(trim); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" {
				appendElement(Element{Type: ElementLabel, Name: name, Line: lineNo})
				current = -1
				sawLabel = true
				continue
			}
			// A bare "::" carries no target; fall through as plain text.
		}

		if fields := strings.Fields(trim); len(fields) > 0 && directiveWords[strings.ToLower(fields[0])] {
			if opts.RequireLeadingLabel && !sawLabel {
				return nil, structuralOrder(lineNo, trim)
			}
			appendElement(Element{Type: ElementDirective, Text: trim, Line: lineNo})
			current = -1
			continue
		}

		if m := reDialogue.FindStringSubmatch(trim); m != nil {
			if opts.RequireLeadingLabel && !sawLabel {
				return nil, structuralOrder(lineNo, trim)
			}
			speaker := strings.TrimSpace(m[1])
			text := strings.TrimSpace(m[2])
			if text == "" {
				text = Ellipsis
			}
			appendElement(Element{Type: ElementDialogue, Speaker: speaker, Text: text, Line: lineNo})
			current = len(s.Elements) - 1
			if speaker != "" && !seen[speaker] {
				seen[speaker] = true
				s.Speakers = append(s.Speakers, speaker)
			}
			continue
		}

		// Leading colons mean an explicitly unnamed phrase.
		if strings.HasPrefix(trim, ":") {
			text := strings.TrimSpace(strings.TrimLeft(trim, ":"))
			if text == "" {
				continue
			}
			if opts.RequireLeadingLabel && !sawLabel {
				return nil, structuralOrder(lineNo, trim)
			}
			appendElement(Element{Type: ElementDialogue, Text: text, Line: lineNo})
			current = len(s.Elements) - 1
			continue
		}

		// Unrecognized line: continuation of the open dialogue, else
		// narration.
		if current >= 0 {
			if s.Elements[current].Text == Ellipsis {
				s.Elements[current].Text = trim
			} else {
				s.Elements[current].Text += " " + trim
			}
			continue
		}
		if opts.RequireLeadingLabel && !sawLabel {
			return nil, structuralOrder(lineNo, trim)
		}
		appendElement(Element{Type: ElementDialogue, Text: trim, Line: lineNo})
		current = len(s.Elements) - 1
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan line %d: %w", lineNo, err)
	}
	return s, nil
}

func structuralOrder(line int, content string) error {
	return fmt.Errorf("%w: line %d: %q", apperr.ErrStructuralOrder, line, content)
}
