// This file is part of Gaxrip.
//
// Gaxrip is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gaxrip is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gaxrip.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// The name to use when referring to the application
const ApplicationName = "Gaxrip"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/gaxrip/gaxrip/version.number=v0.1.0"
var number string

type info struct {
	version  string
	revision string
}

// the version is "unreleased" when there is vcs information but no release
// number and "local" when there is neither, as happens with "go run ."
var buildInfo = sync.OnceValue(func() info {
	var vcs bool
	var rev string
	var modified bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	inf := info{version: number, revision: rev}

	switch {
	case inf.revision == "":
		inf.revision = "no revision information"
	case modified:
		inf.revision = fmt.Sprintf("%s+dirty", inf.revision)
	}

	if inf.version == "" {
		if vcs {
			inf.version = "unreleased"
		} else {
			inf.version = "local"
		}
	}

	return inf
})

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	inf := buildInfo()
	return inf.version, inf.revision, number != "" && inf.version == number
}

// String returns the application name and version. It is used for the gsfby
// tag of ripped files.
func String() string {
	return fmt.Sprintf("%s %s", ApplicationName, buildInfo().version)
}
