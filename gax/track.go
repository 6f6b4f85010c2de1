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

package gax

import (
	"io"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/gax/version"
	"github.com/gaxrip/gaxrip/report"
)

// Track is a piece of music in the cartridge.
type Track struct {
	// name and artist as parsed from RawName
	Name   string
	Artist string

	// the song info string as it appears in the cartridge
	RawName string

	// the address of the track data. this is the value written to the
	// parameter block of a minigsf
	Address memorymap.Address
}

// SongScanner is implemented by types that can find the tracks in a
// cartridge. The tracks should be returned in the order they appear in the
// image.
type SongScanner interface {
	Scan(image []byte, v version.Version) []Track
}

// WriteTracks writes the list of tracks as a table.
func WriteTracks(w io.Writer, tracks []Track) error {
	rows := make([][]string, 0, len(tracks))
	for _, t := range tracks {
		rows = append(rows, []string{
			report.Text(t.Name),
			report.Text(t.Artist),
			report.Text(t.RawName),
			t.Address.String(),
		})
	}
	return report.Tabulate(w, []string{"Name", "Artist", "Full Name", "Address"}, rows)
}
