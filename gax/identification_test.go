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
	"strings"
	"testing"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/gax"
	"github.com/gaxrip/gaxrip/gax/signatures"
	"github.com/gaxrip/gaxrip/gax/version"
	"github.com/gaxrip/gaxrip/test"
)

type fixedScanner []gax.Track

func (s fixedScanner) Scan(_ []byte, _ version.Version) []gax.Track {
	return s
}

func TestIdentifyV3(t *testing.T) {
	img := gax305().build()
	scanner := fixedScanner{{Name: "Title", Address: 0x08002000}}

	id := gax.Identify(img, nil, scanner)
	test.DemandSuccess(t, id.OK())

	test.ExpectEquality(t, id.VersionText, "GAX Sound Engine v3.05-ND (Jun 30 2004)")
	test.ExpectEquality(t, id.Version, version.Version{Major: 3, Minor: 5})

	for _, e := range signatures.Entries {
		a, ok := id.Entry(e).Get()
		test.ExpectSuccess(t, ok, e)
		test.ExpectEquality(t, a, memorymap.ToROMAddress(uint32(entryOffsets[e])), e)
	}

	test.ExpectEquality(t, id.Builds[signatures.Init], "GAX 3.05-ND")
	test.ExpectEquality(t, id.Builds[signatures.IRQ], "GAX 3.05-ND")
	test.ExpectEquality(t, id.Builds[signatures.Play], "GAX 3")

	w, ok := id.WorkRAM.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, memorymap.Address(0x03000010))

	test.DemandEquality(t, len(id.Tracks), 1)
	test.ExpectEquality(t, id.Tracks[0].Name, "Title")
}

func TestIdentifyV2(t *testing.T) {
	img := gax23().build()

	id := gax.Identify(img, nil, nil)
	test.DemandSuccess(t, id.OK())
	test.ExpectEquality(t, id.Version, version.Version{Major: 2, Minor: 3})
	test.ExpectEquality(t, id.Builds[signatures.Estimate], "GAX 2.3")
	test.ExpectEquality(t, len(id.Tracks), 0)

	w, ok := id.WorkRAM.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, memorymap.Address(0x02000100))
}

// the location of the work ram pointer in v2 images depends on the third byte
// of the play routine
func TestWorkRAMV2(t *testing.T) {
	ti := gax23()
	ti.versionText = "GAX Sound Engine v2.2\x00"

	// 2.2 play routine has 0x30 in the third byte
	ti.builds[signatures.Play] = 2
	ti.workRAMOffset = 0xc4
	ti.workRAM = 0x03000200
	id := gax.Identify(ti.build(), nil, nil)
	w, ok := id.WorkRAM.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, memorymap.Address(0x03000200))

	// 2.1 play routine has 0x4c in the third byte
	ti.builds[signatures.Play] = 3
	ti.workRAMOffset = 0x134
	ti.workRAM = 0x03000300
	id = gax.Identify(ti.build(), nil, nil)
	w, ok = id.WorkRAM.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, memorymap.Address(0x03000300))

	// the pointer is ignored if it does not point to RAM
	ti.workRAM = 0x08000300
	id = gax.Identify(ti.build(), nil, nil)
	test.ExpectSuccess(t, id.WorkRAM.IsNull())
	test.ExpectSuccess(t, id.OK())
}

func TestWorkRAMOutOfBounds(t *testing.T) {
	ti := gax305()
	ti.workRAMOffset = 0
	img := ti.build()

	// the play routine is found but the image ends before the work ram
	// pointer
	img = img[:entryOffsets[signatures.Play]+0x124+3]
	id := gax.Identify(img, nil, nil)
	test.ExpectFailure(t, id.Play.IsNull())
	test.ExpectSuccess(t, id.WorkRAM.IsNull())
}

// sub-routines are only searched for after the estimate routine
func TestIdentifyLowerBound(t *testing.T) {
	ti := gax305()
	img := ti.build()

	db := signatures.NewDatabase()
	copy(img[0x0800:], db.Signatures(signatures.IRQ)[1].Pattern)
	copy(img[0x1300:], make([]byte, 32))

	id := gax.Identify(img, db, nil)
	test.ExpectSuccess(t, id.IRQ.IsNull())
	test.ExpectFailure(t, id.OK())

	// without an estimate routine the search starts at the beginning of the
	// image
	copy(img[0x1000:], make([]byte, 20))
	id = gax.Identify(img, db, nil)
	test.ExpectSuccess(t, id.Estimate.IsNull())
	a, ok := id.IRQ.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, memorymap.Address(0x08000800))
}

func TestIdentifyNothing(t *testing.T) {
	id := gax.Identify(make([]byte, 0x100), nil, nil)
	test.ExpectFailure(t, id.OK())
	test.ExpectSuccess(t, id.Version.IsZero())
	test.ExpectEquality(t, id.VersionText, "")
	for _, e := range signatures.Entries {
		test.ExpectSuccess(t, id.Entry(e).IsNull(), e)
	}
	test.ExpectSuccess(t, id.WorkRAM.IsNull())

	id = gax.Identify(nil, nil, nil)
	test.ExpectFailure(t, id.OK())
}

func TestIdentifyDeterminism(t *testing.T) {
	img := gax305().build()
	first := gax.Identify(img, nil, nil)
	for range 5 {
		id := gax.Identify(img, nil, nil)
		for _, e := range signatures.Entries {
			test.ExpectEquality(t, id.Entry(e), first.Entry(e), e)
		}
		test.ExpectEquality(t, id.WorkRAM, first.WorkRAM)
		test.ExpectEquality(t, id.Version, first.Version)
	}
}

func TestIdentificationOK(t *testing.T) {
	id := completeIdentification(version.Version{Major: 2, Minor: 3})
	test.ExpectSuccess(t, id.OK())

	// the work ram pointer is not needed
	id.WorkRAM = memorymap.Null
	test.ExpectSuccess(t, id.OK())

	id.Version = version.Version{}
	test.ExpectFailure(t, id.OK())

	for _, e := range signatures.Entries {
		id := completeIdentification(version.Version{Major: 3})
		switch e {
		case signatures.Estimate:
			id.Estimate = memorymap.Null
		case signatures.New:
			id.New = memorymap.Null
		case signatures.Init:
			id.Init = memorymap.Null
		case signatures.IRQ:
			id.IRQ = memorymap.Null
		case signatures.Play:
			id.Play = memorymap.Null
		}
		test.ExpectFailure(t, id.OK(), e)
	}
}

func TestIdentificationTable(t *testing.T) {
	id := gax.Identify(gax305().build(), nil, nil)
	s := id.String()
	test.ExpectSuccess(t, strings.Contains(s, "GAX Sound Engine v3.05-ND"), s)
	test.ExpectSuccess(t, strings.Contains(s, "0x08001400 (GAX 3)"), s)
	test.ExpectSuccess(t, strings.Contains(s, "0x03000010"), s)

	// missing values are shown with a dash
	id = gax.Identify(nil, nil, nil)
	w := &test.Writer{}
	test.DemandSuccess(t, id.WriteTable(w))
	for _, l := range strings.Split(strings.TrimSpace(w.String()), "\n")[2:] {
		if strings.HasPrefix(l, "Tracks") {
			continue
		}
		test.ExpectSuccess(t, strings.HasSuffix(strings.TrimSpace(l), "-"), l)
	}
}
