/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package rpy

import (
	"fmt"

	"github.com/coobik/rpy-tools/internal/apperr"
)

// DefaultPageSize is the default number of labels per menu page.
const DefaultPageSize = 20

// Page is one bounded group of label names rendered as a single menu.
type Page struct {
	Index  int
	Labels []string
}

// Paginate splits labels into pages of at most pageSize entries,
// preserving order. Every page except possibly the last is full.
// Identical input always yields identical pages.
func Paginate(labels []string, pageSize int) ([]Page, error) {
	if pageSize < 1 {
		return nil, apperr.InvalidConfiguration(
			fmt.Errorf("label_page_size must be positive, got %d", pageSize))
	}

	var pages []Page
	for start := 0; start < len(labels); start += pageSize {
		end := min(start+pageSize, len(labels))
		pages = append(pages, Page{Index: len(pages), Labels: labels[start:end]})
	}
	return pages, nil
}
