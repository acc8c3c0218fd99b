/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package rpy

import (
	"bytes"
	"strconv"
)

// GeneratedFile is one rendered output file, not yet written to disk.
type GeneratedFile struct {
	Name    string // file name within the output directory
	Content []byte
}

// ReservedMenuLabels returns the labels BuildMenuTree itself declares
// for a corpus of at most n labels: the main label plus, when the corpus
// cannot fit one page, one label per prospective page. Callers keep
// source and chapter labels out of this set so a generated navigation
// file never re-declares (or overwrites) one of them.
func ReservedMenuLabels(mainLabel, prefix string, n, pageSize int) map[string]bool {
	reserved := map[string]bool{mainLabel: true}
	if pageSize < 1 || n <= pageSize {
		return reserved
	}
	pages := (n + pageSize - 1) / pageSize
	for i := 0; i < pages; i++ {
		reserved[NormalizeLabel(prefix+strconv.Itoa(i), mainLabel+"_"+strconv.Itoa(i))] = true
	}
	return reserved
}

// BuildMenuTree renders the navigation tree over labels.
//
// When the labels fit one page, the result is a single main file whose
// menu references every label directly. Otherwise one file per page is
// emitted (named after the prefix plus the page index) with "< BACK"
// navigation to the main menu and "< PREV"/"NEXT >" links between
// adjacent pages, and the main file's menu references the pages.
//
// header, when non-empty, is prepended to the main file (the generator
// puts its init block there). Every label is referenced exactly once
// across the tree; the main file is always last in the result.
func BuildMenuTree(labels []string, mainLabel, prefix string, pageSize int, header []byte) ([]GeneratedFile, error) {
	if len(labels) == 0 {
		return nil, nil
	}

	pages, err := Paginate(labels, pageSize)
	if err != nil {
		return nil, err
	}

	var main bytes.Buffer
	main.Write(header)

	if len(pages) == 1 {
		entries := make([]MenuEntry, 0, len(labels))
		for _, l := range labels {
			entries = append(entries, LabelEntry(l))
		}
		if err := WriteJumpMenu(&main, mainLabel, entries); err != nil {
			return nil, err
		}
		return []GeneratedFile{{Name: mainLabel + Ext, Content: main.Bytes()}}, nil
	}

	pageLabels := make([]string, len(pages))
	for i := range pages {
		pageLabels[i] = NormalizeLabel(prefix+strconv.Itoa(i), mainLabel+"_"+strconv.Itoa(i))
	}

	files := make([]GeneratedFile, 0, len(pages)+1)
	for i, p := range pages {
		entries := make([]MenuEntry, 0, len(p.Labels)+3)
		entries = append(entries, MenuEntry{Title: BackTitle, Target: mainLabel})
		if i > 0 {
			entries = append(entries, MenuEntry{Title: PrevTitle, Target: pageLabels[i-1]})
		}
		if i < len(pages)-1 {
			entries = append(entries, MenuEntry{Title: NextTitle, Target: pageLabels[i+1]})
		}
		for _, l := range p.Labels {
			entries = append(entries, LabelEntry(l))
		}

		var buf bytes.Buffer
		if err := WriteJumpMenu(&buf, pageLabels[i], entries); err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{Name: pageLabels[i] + Ext, Content: buf.Bytes()})
	}

	entries := make([]MenuEntry, 0, len(pageLabels))
	for _, pl := range pageLabels {
		entries = append(entries, LabelEntry(pl))
	}
	if err := WriteJumpMenu(&main, mainLabel, entries); err != nil {
		return nil, err
	}
	return append(files, GeneratedFile{Name: mainLabel + Ext, Content: main.Bytes()}), nil
}
