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

// Package version finds and parses the version string that the GAX Sound
// Engine embeds in every cartridge that uses it. For example:
//
//	GAX Sound Engine v3.05-ND (Jun 30 2004) © Shin'en Multimedia. Code: B.Wodok
package version

import (
	"bytes"
	"fmt"
)

// Marker is the text that precedes the version number.
const Marker = "GAX Sound Engine "

// the maximum number of bytes copied from the image, starting at the marker
const maxTextLen = 128

// the byte value of the copyright symbol in Latin-1
const copyrightSymbol = 0xa9

// Version of the GAX Sound Engine. The zero value indicates an unknown
// version.
type Version struct {
	Major int
	Minor int
}

// IsZero returns true if the version is unknown.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

// Less returns true if v is an earlier version than w.
func (v Version) Less(w Version) bool {
	if v.Major != w.Major {
		return v.Major < w.Major
	}
	return v.Minor < w.Minor
}

func (v Version) String() string {
	if v.IsZero() {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// FindText returns the version text found in the image at or after
// lowerBound. The returned text starts with the Marker and ends before the
// copyright notice. An empty string is returned if no marker can be found.
func FindText(image []byte, lowerBound int) string {
	if lowerBound < 0 || lowerBound >= len(image) {
		return ""
	}

	idx := bytes.Index(image[lowerBound:], []byte(Marker))
	if idx < 0 {
		return ""
	}
	start := lowerBound + idx

	// limit the maximum length of the text for safety and speed
	end := min(start+maxTextLen, len(image))
	text := image[start:end]

	// the text is null-terminated
	if n := bytes.IndexByte(text, 0x00); n >= 0 {
		text = text[:n]
	}

	// trim the copyright part and the separator that precedes it
	if c := bytes.IndexByte(text, copyrightSymbol); c >= 0 {
		text = text[:max(0, c-1)]
	}

	return string(text)
}

// ParseText returns the version described by the text returned by FindText().
// The zero Version is returned if the text cannot be parsed.
func ParseText(text string) Version {
	if len(text) < len(Marker)+1 {
		return Version{}
	}

	pos := len(Marker)
	if c := text[pos]; c == 'v' || c == 'V' {
		pos++
	}

	return parse(text[pos:])
}

// parse a version number in the form major[.minor]. any text after the
// number is ignored.
func parse(s string) Version {
	major, n := digits(s)
	if n == 0 {
		return Version{}
	}
	s = s[n:]

	var minor int
	if len(s) > 1 && s[0] == '.' {
		minor, _ = digits(s[1:])
	}

	v := Version{Major: major, Minor: minor}
	if v.IsZero() {
		return Version{}
	}
	return v
}

// digits returns the value of the decimal digits at the start of s and the
// number of digits consumed. values that would overflow are not parsed.
func digits(s string) (int, int) {
	var v, n int
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		if n >= 6 {
			return 0, 0
		}
		v = v*10 + int(s[n]-'0')
		n++
	}
	return v, n
}
