/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package rpy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/coobik/rpy-tools/internal/apperr"
)

func makeLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("label_%03d", i)
	}
	return out
}

func TestPaginatePartition(t *testing.T) {
	for _, n := range []int{1, 5, 19, 20, 21, 25, 40, 100} {
		for _, size := range []int{1, 3, 20} {
			labels := makeLabels(n)
			pages, err := Paginate(labels, size)
			if err != nil {
				t.Fatalf("Paginate(n=%d, size=%d) error: %v", n, size, err)
			}
			wantPages := (n + size - 1) / size
			if len(pages) != wantPages {
				t.Fatalf("n=%d size=%d: got %d pages, want %d", n, size, len(pages), wantPages)
			}
			seen := map[string]bool{}
			total := 0
			for i, p := range pages {
				if p.Index != i {
					t.Fatalf("page %d has index %d", i, p.Index)
				}
				if len(p.Labels) > size {
					t.Fatalf("page %d oversized: %d > %d", i, len(p.Labels), size)
				}
				if i < len(pages)-1 && len(p.Labels) != size {
					t.Fatalf("non-final page %d not full: %d", i, len(p.Labels))
				}
				for _, l := range p.Labels {
					if seen[l] {
						t.Fatalf("label %q repeated", l)
					}
					seen[l] = true
					total++
				}
			}
			if total != n {
				t.Fatalf("n=%d size=%d: %d labels across pages", n, size, total)
			}
			// Order preserved across page boundaries.
			idx := 0
			for _, p := range pages {
				for _, l := range p.Labels {
					if l != labels[idx] {
						t.Fatalf("order broken at %d: %q vs %q", idx, l, labels[idx])
					}
					idx++
				}
			}
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	pages, err := Paginate(nil, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 0 {
		t.Fatalf("expected no pages, got %d", len(pages))
	}
}

func TestPaginateInvalidPageSize(t *testing.T) {
	for _, size := range []int{0, -1, -20} {
		_, err := Paginate(makeLabels(3), size)
		if !errors.Is(err, apperr.ErrInvalidConfiguration) {
			t.Fatalf("size=%d: expected ErrInvalidConfiguration, got %v", size, err)
		}
	}
}

func TestPaginateDeterministic(t *testing.T) {
	labels := makeLabels(25)
	a, _ := Paginate(labels, 20)
	b, _ := Paginate(labels, 20)
	if fmt.Sprintf("%+v", a) != fmt.Sprintf("%+v", b) {
		t.Fatalf("pagination is not deterministic")
	}
}
