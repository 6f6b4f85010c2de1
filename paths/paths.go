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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the name of the resource directory. in the current directory it is hidden,
// in the user's configuration directory it is not
const baseResourcePath = ".gaxrip"

// Names of resources.
const (
	// directory containing the driver manifest and templates
	DriverDir = "driver"

	// additional signatures that are loaded automatically
	SignatureFile = "signatures.yaml"
)

// ResourcePath returns the path to the named resource. The resource is not
// required to exist.
func ResourcePath(resource ...string) string {
	return filepath.Join(append([]string{basePath()}, resource...)...)
}

// Exists returns true if the resource can be found.
func Exists(resource ...string) bool {
	_, err := os.Stat(ResourcePath(resource...))
	return err == nil
}

// a resource directory in the current directory takes priority over the one
// in the user's configuration directory
func basePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(cfg, strings.TrimPrefix(baseResourcePath, "."))
}

// UniqueFilename creates a filename that should not collide with an existing
// file. The format is:
//
//	prepend_cartname_YYYYMMDD_HHMMSS
//
// The cartname part is omitted if it is empty.
func UniqueFilename(prepend string, cartName string, t time.Time) string {
	ts := t.Format("20060102_150405")
	if c := strings.TrimSpace(cartName); c != "" {
		return fmt.Sprintf("%s_%s_%s", prepend, c, ts)
	}
	return fmt.Sprintf("%s_%s", prepend, ts)
}
