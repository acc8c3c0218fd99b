/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

package screenplay

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/coobik/rpy-tools/internal/apperr"
	"github.com/coobik/rpy-tools/internal/rpy"
)

// Character binds a screenplay display name to a script-level
// identifier.
type Character struct {
	Name string // display name as written in screenplay text
	ID   string // valid target-language identifier, unique per registry
}

// Registry maps display names to characters. Configured entries are
// seeded up front and always win; unseen speakers are synthesized on
// first resolve with a deterministic name-to-identifier transform.
type Registry struct {
	chars    []Character // first-seen order, configured entries first
	byName   map[string]int
	idOwner  map[string]string // identifier -> display name that holds it
	warnings []error
}

// NewRegistry seeds a registry from configured characters, in order.
// Configured identifiers must be valid and unique: the configuration is
// the author's chance to disambiguate, so conflicts there are fatal.
func NewRegistry(configured []Character) (*Registry, error) {
	r := &Registry{
		byName:  make(map[string]int, len(configured)),
		idOwner: make(map[string]string, len(configured)),
	}
	for _, c := range configured {
		if !rpy.IsIdentifier(c.ID) {
			return nil, apperr.InvalidConfiguration(
				fmt.Errorf("character %q: %q is not a valid identifier", c.Name, c.ID))
		}
		if owner, taken := r.idOwner[c.ID]; taken {
			return nil, apperr.InvalidConfiguration(
				fmt.Errorf("characters %q and %q share identifier %q", owner, c.Name, c.ID))
		}
		if _, dup := r.byName[c.Name]; dup {
			return nil, apperr.InvalidConfiguration(
				fmt.Errorf("character %q configured twice", c.Name))
		}
		r.byName[c.Name] = len(r.chars)
		r.idOwner[c.ID] = c.Name
		r.chars = append(r.chars, Character{Name: c.Name, ID: c.ID})
	}
	return r, nil
}

// Resolve returns the identifier for a display name, registering a
// synthesized one on first encounter. When two distinct names collapse
// to the same synthesized identifier the later one gets a numeric
// suffix and the collision is recorded as a warning.
func (r *Registry) Resolve(display string) string {
	if i, ok := r.byName[display]; ok {
		return r.chars[i].ID
	}

	base := SynthesizeID(display)
	id := base
	if owner, taken := r.idOwner[id]; taken {
		for n := 2; ; n++ {
			id = base + "_" + strconv.Itoa(n)
			if _, t := r.idOwner[id]; !t {
				break
			}
		}
		r.warnings = append(r.warnings, &apperr.IdentifierCollisionError{
			ID:       base,
			Names:    []string{owner, display},
			Resolved: id,
		})
	}

	r.byName[display] = len(r.chars)
	r.idOwner[id] = display
	r.chars = append(r.chars, Character{Name: display, ID: id})
	return id
}

// Characters returns every registered character in first-seen order
// (configured entries first).
func (r *Registry) Characters() []Character { return r.chars }

// Warnings returns the identifier collisions recorded so far.
func (r *Registry) Warnings() []error { return r.warnings }

// stripMarks removes combining marks after canonical decomposition, so
// accented display names fold to plain ASCII identifiers.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SynthesizeID derives a script identifier from a display name:
// diacritics folded, lower-cased, runs of non-identifier characters
// squashed to single underscores. Deterministic; never empty.
func SynthesizeID(display string) string {
	folded, _, err := transform.String(stripMarks, display)
	if err != nil {
		folded = display
	}

	var b strings.Builder
	pendingSep := false
	for _, c := range strings.ToLower(folded) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(c)
			continue
		}
		pendingSep = true
	}

	id := b.String()
	if id == "" {
		return "ch"
	}
	if id[0] >= '0' && id[0] <= '9' {
		return "ch_" + id
	}
	return id
}
