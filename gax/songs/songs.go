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

// Package songs finds the tracks in a cartridge that uses the GAX Sound
// Engine.
//
// Every GAX song carries an info string of the form
//
//	"Title" © Artist
//
// encoded as Latin-1 and terminated by a zero byte. The song header refers to
// the string with a 32 bit pointer and it is the address of that pointer that
// identifies the track.
package songs

import (
	"encoding/binary"
	"strings"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/gax"
	"github.com/gaxrip/gaxrip/gax/version"
	"github.com/gaxrip/gaxrip/logger"
	"golang.org/x/text/encoding/charmap"
)

const (
	quote         = '"'
	copyrightByte = 0xa9
	copyright     = "©"

	// limits on the length of an info string
	minInfoLen = 4
	maxInfoLen = 256
)

// ParseName splits a raw Latin-1 info string into the title and the artist.
// If the string is not in the usual form then the whole string is returned as
// the name and the artist is empty.
func ParseName(raw []byte) (name string, artist string) {
	s := decode(raw)

	if len(s) < 2 || s[0] != quote {
		return s, ""
	}

	end := strings.IndexByte(s[1:], quote)
	if end < 0 {
		return s, ""
	}
	name = s[1 : end+1]

	rest := strings.TrimSpace(s[end+2:])
	if strings.HasPrefix(rest, copyright) {
		artist = strings.TrimSpace(strings.TrimPrefix(rest, copyright))
	}

	return name, artist
}

// decode Latin-1 to UTF-8. the decoder cannot fail for Latin-1 input because
// every byte value has a mapping
func decode(raw []byte) string {
	b, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(b)
}

func printable(b byte) bool {
	return (b >= 0x20 && b < 0x7f) || b >= 0xa0
}

// infoString returns the info string starting at offset or false if there is
// no info string at the offset
func infoString(image []byte, offset int) ([]byte, bool) {
	if image[offset] != quote {
		return nil, false
	}

	// info strings are preceded by the terminator of the previous data
	if offset > 0 && image[offset-1] != 0x00 {
		return nil, false
	}

	end := min(offset+maxInfoLen, len(image))
	var hasCopyright bool
	for i := offset; i < end; i++ {
		b := image[i]
		if b == 0x00 {
			if !hasCopyright || i-offset < minInfoLen {
				return nil, false
			}
			return image[offset:i], true
		}
		if !printable(b) {
			return nil, false
		}
		if b == copyrightByte {
			hasCopyright = true
		}
	}

	return nil, false
}

// TextScanner finds tracks by searching for song info strings and the
// pointers to them. It implements the gax.SongScanner interface.
type TextScanner struct {
	// log every info string found, whether or not a track refers to it
	Verbose bool
}

// Scan the image for tracks. No tracks are returned if the version of the
// sound engine is unknown.
func (sc TextScanner) Scan(image []byte, v version.Version) []gax.Track {
	if v.IsZero() {
		return nil
	}

	// the ROM address of every info string
	info := make(map[uint32][]byte)
	for i := 0; i < len(image); i++ {
		if s, ok := infoString(image, i); ok {
			a := memorymap.ToROMAddress(uint32(i))
			info[uint32(a)] = s
			logger.Logf(logger.Verbosity(sc.Verbose), "songs", "info string at %v: %s", a, decode(s))
			i += len(s)
		}
	}
	if len(info) == 0 {
		return nil
	}

	// pointers are word aligned. tracks are found in image order
	var tracks []gax.Track
	for i := 0; i+4 <= len(image); i += 4 {
		s, ok := info[binary.LittleEndian.Uint32(image[i:])]
		if !ok {
			continue
		}
		name, artist := ParseName(s)
		tracks = append(tracks, gax.Track{
			Name:    name,
			Artist:  artist,
			RawName: decode(s),
			Address: memorymap.ToROMAddress(uint32(i)),
		})
	}

	logger.Logf(logger.Allow, "songs", "%d info strings, %d tracks", len(info), len(tracks))

	return tracks
}
