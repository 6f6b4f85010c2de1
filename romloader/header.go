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
	"fmt"
	"strings"
)

// locations in the cartridge header
const (
	titleOrigin    = 0xa0
	titleLen       = 12
	gameCodeOrigin = 0xac
	gameCodeLen    = 4
	makerOrigin    = 0xb0
	makerLen       = 2
	fixedValue     = 0xb2
	checksumOrigin = 0xa0
	checksumMemtop = 0xbc
	checksumValue  = 0xbd
	headerMemtop   = 0xbf
)

// the value that must be at the fixedValue address
const fixed = 0x96

// Header is the information in the cartridge header that is useful for
// naming and checking a cartridge.
type Header struct {
	// Title is upper case ASCII and up to 12 characters long
	Title string

	// GameCode is four characters. The last character is the region
	GameCode string

	// MakerCode is two characters
	MakerCode string

	// Checksum is the value stored in the header. ChecksumOK is true if it
	// matches the value calculated from the header
	Checksum   uint8
	ChecksumOK bool

	// Valid is false if the image is too short to contain a header or if the
	// fixed value in the header is wrong
	Valid bool
}

func (h Header) String() string {
	if !h.Valid {
		return "no header"
	}
	s := fmt.Sprintf("%s [%s%s]", h.Title, h.GameCode, h.MakerCode)
	if !h.ChecksumOK {
		s = fmt.Sprintf("%s (bad checksum)", s)
	}
	return s
}

func field(data []byte, origin int, n int) string {
	b := data[origin : origin+n]
	return strings.TrimRight(string(b), "\x00 ")
}

// HeaderChecksum calculates the complement check of the header. The image
// must be at least as long as the header.
func HeaderChecksum(data []byte) uint8 {
	var chk uint8
	for _, b := range data[checksumOrigin : checksumMemtop+1] {
		chk -= b
	}
	return chk - 0x19
}

// ParseHeader returns the header of the image.
func ParseHeader(data []byte) Header {
	if len(data) <= headerMemtop {
		return Header{}
	}

	h := Header{
		Title:     field(data, titleOrigin, titleLen),
		GameCode:  field(data, gameCodeOrigin, gameCodeLen),
		MakerCode: field(data, makerOrigin, makerLen),
		Checksum:  data[checksumValue],
		Valid:     data[fixedValue] == fixed,
	}
	h.ChecksumOK = h.Checksum == HeaderChecksum(data)

	return h
}
