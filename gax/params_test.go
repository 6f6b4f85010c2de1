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

package gax_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/curated"
	"github.com/gaxrip/gaxrip/gax"
	"github.com/gaxrip/gaxrip/gax/driver"
	"github.com/gaxrip/gaxrip/test"
)

func TestSerialise(t *testing.T) {
	p := gax.TrackParams{
		Track:      memorymap.PointerTo(0x08123454),
		Effects:    memorymap.PointerTo(0x08200010),
		EffectID:   0x0102,
		Flags:      0x8003,
		MixingRate: 0x3d09,
		Volume:     0x00ff,
	}

	b, err := p.Serialise()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(b), driver.ParamsSize)

	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[0:]), uint32(0x08123454))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[4:]), uint32(0x08200010))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(b[8:]), uint16(0x0102))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(b[10:]), uint16(0x8003))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(b[12:]), uint16(0x3d09))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(b[14:]), uint16(0x00ff))

	for i := 16; i < len(b); i++ {
		test.ExpectEquality(t, b[i], uint8(0), i)
	}
}

func TestSerialiseDefaults(t *testing.T) {
	p := gax.NewTrackParams(gax.Track{Name: "Title", Address: 0x08010000})
	test.DemandSuccess(t, p.OK())

	b, err := p.Serialise()
	test.DemandSuccess(t, err)

	// a missing effects pointer is written as zero
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[0:]), uint32(0x08010000))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[4:]), uint32(0))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(b[8:]), uint16(0))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(b[10:]), uint16(0))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(b[12:]), uint16(gax.EngineDefault))
	test.ExpectEquality(t, binary.LittleEndian.Uint16(b[14:]), uint16(gax.EngineDefault))
}

func TestSerialiseIncomplete(t *testing.T) {
	p := gax.TrackParams{Effects: memorymap.PointerTo(0x08200010)}
	test.ExpectFailure(t, p.OK())

	b, err := p.Serialise()
	test.ExpectSuccess(t, curated.Is(err, gax.IncompleteTrackParams))
	test.ExpectEquality(t, len(b), 0)

	// the message includes the parameter table
	test.ExpectSuccess(t, strings.Contains(err.Error(), "0x08200010"), err)

	// the track must be in ROM
	p.Track = memorymap.PointerTo(0x03000000)
	_, err = p.Serialise()
	test.ExpectSuccess(t, curated.Is(err, gax.IncompleteTrackParams))
}

func TestWriteTracks(t *testing.T) {
	w := &test.Writer{}
	err := gax.WriteTracks(w, []gax.Track{
		{Name: "Title", Artist: "Artist", RawName: "\"Title\" © Artist", Address: 0x08100000},
		{RawName: "jingle", Address: 0x08100100},
	})
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "Name"), lines[0])
	test.ExpectSuccess(t, strings.Contains(lines[2], "0x08100000"), lines[2])
	test.ExpectSuccess(t, strings.HasPrefix(lines[3], "-"), lines[3])
	test.ExpectSuccess(t, strings.Contains(lines[3], "jingle"), lines[3])
}
