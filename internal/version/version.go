/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Package version exposes the tool version reported by -v/--version.
package version

import "runtime/debug"

// Version is the semantic version of the rpy-tools release.
// Overridable at build time: -ldflags "-X .../internal/version.Version=x.y.z"
var Version = "1.1.0"

// URL is the project home, printed in CLI banners and usage epilogues.
const URL = "https://github.com/Coobik/rpy-tools"

// String returns the version, suffixed with the VCS revision when the
// binary was built from a checkout with module info embedded.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	var rev, dirty string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				dirty = "-dirty"
			}
		}
	}
	if rev == "" {
		return Version
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return Version + "+" + rev + dirty
}
