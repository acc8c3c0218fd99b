/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Package indexer scans .rpy script files for labels and emits the
// jump-menu navigation tree over them.
package indexer

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/coobik/rpy-tools/internal/apperr"
	"github.com/coobik/rpy-tools/internal/config"
	"github.com/coobik/rpy-tools/internal/fileutil"
	applog "github.com/coobik/rpy-tools/internal/log"
	"github.com/coobik/rpy-tools/internal/rpy"
)

// Report summarizes one indexer run.
type Report struct {
	Files      int      // source files scanned
	Labels     int      // labels included in the menu tree
	Duplicates int      // label names excluded from the menu tree
	Outputs    []string // paths written, in write order
	Warnings   []error  // read failures and duplicate labels
}

// Incomplete reports whether the generated tree is missing labels and
// the run should exit non-zero despite producing output.
func (r *Report) Incomplete() bool { return r.Duplicates > 0 }

// Run executes the indexer pipeline: collect, extract, merge, paginate,
// emit. Per-file read failures are warnings; duplicated label names and
// labels clashing with generated navigation labels are excluded from
// the tree and counted in the report.
func Run(opts config.Options) (*Report, error) {
	opts = opts.Normalized(config.DefaultIndexMainLabel)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	l := applog.WithComponent("indexer")

	paths, warnings, err := fileutil.Collect(opts.InputDir, rpy.Ext)
	if err != nil {
		return nil, err
	}

	rep := &Report{Warnings: warnings}

	var corpus []rpy.Label
	for _, path := range paths {
		labels, err := scanFile(path)
		if err != nil {
			rep.Warnings = append(rep.Warnings, err)
			continue
		}
		l.Debug("scanned source", slog.String("file", path), slog.Int("labels", len(labels)))
		rep.Files++
		corpus = append(corpus, labels...)
	}

	reserved := rpy.ReservedMenuLabels(opts.MainLabel, opts.FileNamePrefix, len(corpus), opts.PageSize)
	names, dupErrs := mergeLabels(corpus, reserved)
	rep.Warnings = append(rep.Warnings, dupErrs...)
	rep.Duplicates = len(dupErrs)
	rep.Labels = len(names)

	files, err := rpy.BuildMenuTree(names, opts.MainLabel, opts.FileNamePrefix, opts.PageSize, nil)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		path := filepath.Join(opts.OutputDir, f.Name)
		if err := fileutil.WriteFileAtomic(path, f.Content); err != nil {
			return nil, err
		}
		l.Info("wrote index file", slog.String("file", path))
		rep.Outputs = append(rep.Outputs, path)
	}

	l.Info("indexing done",
		slog.Int("files", rep.Files),
		slog.Int("labels", rep.Labels),
		slog.Int("duplicates", rep.Duplicates),
		slog.Int("outputs", len(rep.Outputs)))
	return rep, nil
}

// scanFile extracts the labels declared in one script file.
func scanFile(path string) ([]rpy.Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &apperr.FileReadError{Path: path, Err: err}
	}
	defer f.Close()

	var labels []rpy.Label
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if name := rpy.ExtractLabel(sc.Text()); name != "" {
			labels = append(labels, rpy.Label{Name: name, File: path, Line: line})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &apperr.FileReadError{Path: path, Err: err}
	}
	return labels, nil
}

// generatedSite marks the navigation tree's own declaration in a
// duplicate report, next to the "file:line" source sites.
const generatedSite = "generated navigation menu"

// mergeLabels is the corpus-level validation pass: it preserves
// discovery order, drops every occurrence of an excluded name, and
// returns one error per excluded name listing all declaration sites.
// A name is excluded when it is declared more than once, or when it is
// reserved for the navigation tree itself (the main label or a page
// label), since the generated files would re-declare it and every jump
// to it would become ambiguous.
func mergeLabels(corpus []rpy.Label, reserved map[string]bool) ([]string, []error) {
	counts := make(map[string]int, len(corpus))
	for _, lb := range corpus {
		counts[lb.Name]++
	}

	var names []string
	sites := map[string][]string{}
	var dupOrder []string
	for _, lb := range corpus {
		if counts[lb.Name] == 1 && !reserved[lb.Name] {
			names = append(names, lb.Name)
			continue
		}
		if _, seen := sites[lb.Name]; !seen {
			dupOrder = append(dupOrder, lb.Name)
		}
		sites[lb.Name] = append(sites[lb.Name], fmt.Sprintf("%s:%d", lb.File, lb.Line))
	}

	var errs []error
	for _, name := range dupOrder {
		s := sites[name]
		if reserved[name] {
			s = append(s, generatedSite)
		}
		errs = append(errs, &apperr.DuplicateLabelError{Name: name, Sites: s})
	}
	return names, errs
}
