/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Package generator converts plain-text screenplay files into .rpy
// script files and emits a main script with the character init block
// and a chapter jump menu.
package generator

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/coobik/rpy-tools/internal/apperr"
	"github.com/coobik/rpy-tools/internal/config"
	"github.com/coobik/rpy-tools/internal/fileutil"
	applog "github.com/coobik/rpy-tools/internal/log"
	"github.com/coobik/rpy-tools/internal/rpy"
	"github.com/coobik/rpy-tools/internal/screenplay"
)

// ExtTxt is the screenplay source extension.
const ExtTxt = ".txt"

// Report summarizes one generator run.
type Report struct {
	Files      int      // screenplay files converted
	Lines      int      // say statements emitted
	Characters int      // characters in the final registry
	Outputs    []string // paths written, in write order
	Warnings   []error  // read failures and identifier collisions
}

// Run executes the generator pipeline: collect, parse, resolve the
// character registry, emit chapter files, emit the main script.
func Run(opts config.Options) (*Report, error) {
	opts = opts.Normalized(config.DefaultGenMainLabel)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	l := applog.WithComponent("generator")

	cfg, err := config.LoadScriptConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	reg, err := screenplay.NewRegistry(cfg.Characters)
	if err != nil {
		return nil, err
	}

	paths, warnings, err := fileutil.Collect(opts.InputDir, ExtTxt)
	if err != nil {
		return nil, err
	}

	rep := &Report{Warnings: warnings}
	// The main label and every page label the chapter menu may declare
	// are reserved up front: a chapter normalizing to one of them gets a
	// numeric suffix instead of having its file overwritten by the
	// navigation file of the same name.
	usedLabels := rpy.ReservedMenuLabels(opts.MainLabel, opts.MainLabel+"_", len(paths), opts.PageSize)
	var chapters []string

	for _, path := range paths {
		script, err := parseFile(path)
		if err != nil {
			rep.Warnings = append(rep.Warnings, err)
			continue
		}

		// Explicit resolve pass: register every speaker of this file in
		// first-seen order before emitting anything.
		for _, sp := range script.Speakers {
			reg.Resolve(sp)
		}

		chapter := chapterLabel(path, len(chapters), usedLabels)
		content, lines := renderChapter(chapter, script, reg)

		outPath := filepath.Join(opts.OutputDir, chapter+rpy.Ext)
		if err := fileutil.WriteFileAtomic(outPath, content); err != nil {
			return nil, err
		}
		l.Info("wrote chapter", slog.String("file", outPath),
			slog.String("chapter", chapter), slog.Int("lines", lines))

		rep.Files++
		rep.Lines += lines
		rep.Outputs = append(rep.Outputs, outPath)
		chapters = append(chapters, chapter)
	}

	rep.Warnings = append(rep.Warnings, reg.Warnings()...)
	rep.Characters = len(reg.Characters())

	if len(chapters) > 0 {
		var header bytes.Buffer
		if err := rpy.WriteInit(&header, opts.MainLabel, characterDefs(reg)); err != nil {
			return nil, err
		}
		files, err := rpy.BuildMenuTree(chapters, opts.MainLabel, opts.MainLabel+"_", opts.PageSize, header.Bytes())
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			path := filepath.Join(opts.OutputDir, f.Name)
			if err := fileutil.WriteFileAtomic(path, f.Content); err != nil {
				return nil, err
			}
			l.Info("wrote main script file", slog.String("file", path))
			rep.Outputs = append(rep.Outputs, path)
		}
	}

	l.Info("generation done",
		slog.Int("files", rep.Files),
		slog.Int("lines", rep.Lines),
		slog.Int("characters", rep.Characters),
		slog.Int("outputs", len(rep.Outputs)))
	return rep, nil
}

func parseFile(path string) (*screenplay.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &apperr.FileReadError{Path: path, Err: err}
	}
	defer f.Close()

	script, err := screenplay.Parse(f, screenplay.Options{})
	if err != nil {
		return nil, &apperr.FileReadError{Path: path, Err: err}
	}
	return script, nil
}

// chapterLabel derives a unique chapter label from the source file
// name. Output file names follow the label, so two sources normalizing
// to the same name get deterministic numeric suffixes instead of
// clobbering each other.
func chapterLabel(path string, ordinal int, used map[string]bool) string {
	name := strings.TrimSuffix(filepath.Base(path), ExtTxt)
	label := rpy.NormalizeLabel(name, "chapter_"+strconv.Itoa(ordinal))
	if !used[label] {
		used[label] = true
		return label
	}
	for n := 2; ; n++ {
		candidate := label + "_" + strconv.Itoa(n)
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}

// renderChapter translates one parsed screenplay into script text.
func renderChapter(chapter string, script *screenplay.Script, reg *screenplay.Registry) ([]byte, int) {
	var b bytes.Buffer
	rpy.WriteLabelDecl(&b, chapter)

	lines := 0
	body := false
	for _, e := range script.Elements {
		switch e.Type {
		case screenplay.ElementLabel:
			// A label with an empty block is not valid script; close the
			// previous block with a pass when nothing was emitted into it.
			if !body {
				rpy.WritePass(&b)
			}
			b.WriteString("\n")
			rpy.WriteLabelDecl(&b, rpy.NormalizeLabel(e.Name, chapter+"_"+strconv.Itoa(e.Line)))
			body = false
		case screenplay.ElementDirective:
			rpy.WriteStatement(&b, e.Text)
			body = true
		case screenplay.ElementDialogue:
			id := ""
			if e.Speaker != "" {
				id = reg.Resolve(e.Speaker)
			}
			rpy.WriteSay(&b, id, e.Text)
			lines++
			body = true
		}
	}
	if !body {
		rpy.WritePass(&b)
	}
	return b.Bytes(), lines
}

func characterDefs(reg *screenplay.Registry) []rpy.CharacterDef {
	chars := reg.Characters()
	defs := make([]rpy.CharacterDef, len(chars))
	for i, c := range chars {
		defs[i] = rpy.CharacterDef{ID: c.ID, Name: c.Name}
	}
	return defs
}
