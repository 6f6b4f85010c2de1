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

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/gax"
	"github.com/gaxrip/gaxrip/gax/driver"
	"github.com/gaxrip/gaxrip/gax/signatures"
	"github.com/gaxrip/gaxrip/gax/version"
)

const imageSize = 0x4000

// where each sub-routine is placed in the test images
var entryOffsets = map[signatures.Entry]int{
	signatures.Estimate: 0x1000,
	signatures.New:      0x1100,
	signatures.Init:     0x1200,
	signatures.IRQ:      0x1300,
	signatures.Play:     0x1400,
}

// testImage describes a cartridge image to build for testing
type testImage struct {
	versionText string

	// index into the signature list for each entry. a negative value means
	// the entry is not placed in the image
	builds map[signatures.Entry]int

	// offset from the play routine and the value of the work ram pointer
	workRAMOffset int
	workRAM       uint32
}

func (ti testImage) build() []byte {
	img := make([]byte, imageSize)

	// something that looks like the usual entry instruction
	binary.LittleEndian.PutUint32(img, 0xea00002e)

	copy(img[0x200:], []byte(ti.versionText))

	db := signatures.NewDatabase()
	for e, idx := range ti.builds {
		if idx < 0 {
			continue
		}
		copy(img[entryOffsets[e]:], db.Signatures(e)[idx].Pattern)
	}

	if ti.workRAMOffset > 0 {
		binary.LittleEndian.PutUint32(img[entryOffsets[signatures.Play]+ti.workRAMOffset:], ti.workRAM)
	}

	return img
}

// a GAX v3.05 image. the play routine is the GAX 3 pattern
func gax305() testImage {
	return testImage{
		versionText: "GAX Sound Engine v3.05-ND (Jun 30 2004) \xa9 Shin'en Multimedia. Code: B.Wodok\x00",
		builds: map[signatures.Entry]int{
			signatures.Estimate: 0,
			signatures.New:      0,
			signatures.Init:     1,
			signatures.IRQ:      1,
			signatures.Play:     0,
		},
		workRAMOffset: 0x124,
		workRAM:       0x03000010,
	}
}

// a GAX v2.3 image. the third byte of the play routine is 0x81 and so the work
// ram pointer is at the default location
func gax23() testImage {
	return testImage{
		versionText: "GAX Sound Engine V2.3 (Apr 2002) \xa9 Shin'en Multimedia\x00",
		builds: map[signatures.Entry]int{
			signatures.Estimate: 1,
			signatures.New:      0,
			signatures.Init:     2,
			signatures.IRQ:      2,
			signatures.Play:     1,
		},
		workRAMOffset: 0xf0,
		workRAM:       0x02000100,
	}
}

// code fill value for test templates
const templateFill = 0xee

func templateCode(size int) []byte {
	c := make([]byte, size)
	for i := range c {
		c[i] = templateFill
	}
	return c
}

func testDrivers() driver.Set {
	o2 := driver.NewOffsets()
	o2.New = 0x40
	o2.Init = 0x44
	o2.IRQ = 0x48
	o2.Play = 0x4c
	o2.WorkRAM = 0x50
	o2.WorkRAMSize = 0x54
	o2.Params = 0x58

	o3 := driver.NewOffsets()
	o3.Estimate = 0x3c
	o3.New = 0x40
	o3.Init = 0x44
	o3.IRQ = 0x48
	o3.Play = 0x4c
	o3.WorkRAM = 0x50
	o3.FXParam = 0x10
	o3.Params = 0x58

	return driver.Set{
		Gax2: driver.Template{Name: "gax2", Code: templateCode(0x80), Offsets: o2},
		Gax3: driver.Template{Name: "gax3", Code: templateCode(0x70), Offsets: o3},
	}
}

// a complete identification that does not depend on the content of an image
func completeIdentification(v version.Version) gax.Identification {
	return gax.Identification{
		VersionText: "GAX Sound Engine",
		Version:     v,
		Estimate:    memorymap.PointerTo(0x08001000),
		New:         memorymap.PointerTo(0x08001101),
		Init:        memorymap.PointerTo(0x08001200),
		IRQ:         memorymap.PointerTo(0x08001301),
		Play:        memorymap.PointerTo(0x08001400),
		WorkRAM:     memorymap.Null,
	}
}

func word(b []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(b[offset:])
}
