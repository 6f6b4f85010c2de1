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

package signatures

import (
	"bytes"
	"strings"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/curated"
)

// Entry identifies one of the sound engine sub-routines that the driver calls.
type Entry int

// List of valid Entry values.
const (
	Estimate Entry = iota
	New
	Init
	IRQ
	Play
)

// Entries lists every Entry in the order they are searched for.
var Entries = []Entry{Estimate, New, Init, IRQ, Play}

func (e Entry) String() string {
	switch e {
	case Estimate:
		return "Estimate"
	case New:
		return "New"
	case Init:
		return "Init"
	case IRQ:
		return "IRQ"
	case Play:
		return "Play"
	}
	return "unknown entry"
}

// UnknownEntry is returned by ParseEntry() when the string does not name an
// Entry.
const UnknownEntry = "signatures: unknown entry: %s"

// ParseEntry is the inverse of Entry.String(). The comparison is case
// insensitive.
func ParseEntry(s string) (Entry, error) {
	for _, e := range Entries {
		if strings.EqualFold(s, e.String()) {
			return e, nil
		}
	}
	return 0, curated.Errorf(UnknownEntry, s)
}

// Signature is a byte pattern that identifies the start of a sub-routine for
// one or more builds of the sound engine.
type Signature struct {
	Build   string
	Pattern []byte
}

// Match is the result of a successful call to Find().
type Match struct {
	Address memorymap.Address
	Build   string
}

// Find searches the image for each signature in turn, starting from the
// lowerBound offset. The first signature in the list that is found anywhere
// in the image is used, even if a later signature occurs earlier in the
// image.
func Find(image []byte, lowerBound int, sigs []Signature) (Match, bool) {
	if lowerBound < 0 || lowerBound >= len(image) {
		return Match{}, false
	}

	for _, s := range sigs {
		if len(s.Pattern) == 0 {
			continue
		}
		if idx := bytes.Index(image[lowerBound:], s.Pattern); idx >= 0 {
			return Match{
				Address: memorymap.ToROMAddress(uint32(lowerBound + idx)),
				Build:   s.Build,
			}, true
		}
	}

	return Match{}, false
}
