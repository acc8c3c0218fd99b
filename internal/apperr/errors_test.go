/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package apperr

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestInputNotFoundWrapsSentinel(t *testing.T) {
	err := InputNotFound("/no/such/dir")
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "/no/such/dir") {
		t.Fatalf("path missing from message: %q", err.Error())
	}
}

func TestInvalidConfigurationWrapsSentinel(t *testing.T) {
	err := InvalidConfiguration(errors.New("label_page_size must be positive"))
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestFileReadErrorUnwrap(t *testing.T) {
	cause := os.ErrPermission
	err := fmt.Errorf("scan: %w", &FileReadError{Path: "a.rpy", Err: cause})
	var fre *FileReadError
	if !errors.As(err, &fre) {
		t.Fatalf("expected FileReadError in chain")
	}
	if fre.Path != "a.rpy" {
		t.Fatalf("unexpected path %q", fre.Path)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("cause not reachable via errors.Is")
	}
}

func TestDuplicateLabelErrorMessage(t *testing.T) {
	err := &DuplicateLabelError{Name: "intro", Sites: []string{"a.rpy:3", "b.rpy:12"}}
	msg := err.Error()
	for _, want := range []string{`"intro"`, "a.rpy:3", "b.rpy:12"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestIdentifierCollisionErrorMessage(t *testing.T) {
	err := &IdentifierCollisionError{ID: "girl", Names: []string{"Girl", "G.I.R.L."}, Resolved: "girl_2"}
	msg := err.Error()
	if !strings.Contains(msg, `"girl"`) || !strings.Contains(msg, `"girl_2"`) {
		t.Fatalf("unexpected message %q", msg)
	}
}
