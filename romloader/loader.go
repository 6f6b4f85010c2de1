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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaxrip/gaxrip/curated"
	"github.com/gaxrip/gaxrip/logger"
)

// Sentinal error patterns.
const (
	LoadError      = "romloader: %v"
	UnexpectedHash = "romloader: unexpected hash value (%s)"
	TooLarge       = "romloader: image is too large (%d bytes)"
)

// MaxSize is the size of the largest cartridge image.
const MaxSize = 0x02000000

// FileExtensions is the list of file extensions that are usually used for
// cartridge images.
var FileExtensions = [...]string{".GBA", ".AGB", ".BIN", ".MB"}

// Loader is used to load a cartridge image from disk.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// the header information. only valid after a successful Load()
	Header Header
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the filename, suitable for naming
// output files.
func (cl Loader) ShortName() string {
	s := filepath.Base(cl.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// KnownExtension returns true if the filename has one of the extensions in
// the FileExtensions list. The case of the extension is not important.
func (cl Loader) KnownExtension() bool {
	ext := strings.ToUpper(filepath.Ext(cl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge image. Calling Load() again after a successful load
// does nothing.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	data, err := os.ReadFile(cl.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	if len(data) > MaxSize {
		return curated.Errorf(TooLarge, len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Data = data
	cl.Hash = hash
	cl.Header = ParseHeader(data)

	logger.Logf(logger.Allow, "romloader", "%s: %d bytes (%s)", cl.ShortName(), len(cl.Data), cl.Hash)
	if !cl.KnownExtension() {
		logger.Logf(logger.Allow, "romloader", "%s: unusual file extension for a cartridge", filepath.Base(cl.Filename))
	}
	if cl.Header.Valid {
		logger.Logf(logger.Allow, "romloader", "%s", cl.Header)
	}

	return nil
}
