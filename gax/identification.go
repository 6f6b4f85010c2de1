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
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/gax/signatures"
	"github.com/gaxrip/gaxrip/gax/version"
	"github.com/gaxrip/gaxrip/logger"
	"github.com/gaxrip/gaxrip/report"
)

// Identification is the result of searching a cartridge for the GAX Sound
// Engine. Any field may be missing.
type Identification struct {
	// the version text with the copyright notice removed
	VersionText string
	Version     version.Version

	// sub-routines of the sound engine
	Estimate memorymap.Pointer
	New      memorymap.Pointer
	Init     memorymap.Pointer
	IRQ      memorymap.Pointer
	Play     memorymap.Pointer

	// the engine's own work area, as referenced by the play routine
	WorkRAM memorymap.Pointer

	// the build label of the signature that matched each entry
	Builds map[signatures.Entry]string

	Tracks []Track
}

// OK returns true if the identification is complete enough for a driver to
// be installed.
func (id Identification) OK() bool {
	if id.Version.IsZero() {
		return false
	}
	for _, e := range signatures.Entries {
		if id.Entry(e).IsNull() {
			return false
		}
	}
	return true
}

// Entry returns the pointer for the sound engine sub-routine.
func (id Identification) Entry(e signatures.Entry) memorymap.Pointer {
	switch e {
	case signatures.Estimate:
		return id.Estimate
	case signatures.New:
		return id.New
	case signatures.Init:
		return id.Init
	case signatures.IRQ:
		return id.IRQ
	case signatures.Play:
		return id.Play
	}
	return memorymap.Null
}

func (id *Identification) setEntry(e signatures.Entry, p memorymap.Pointer) {
	switch e {
	case signatures.Estimate:
		id.Estimate = p
	case signatures.New:
		id.New = p
	case signatures.Init:
		id.Init = p
	case signatures.IRQ:
		id.IRQ = p
	case signatures.Play:
		id.Play = p
	}
}

// WriteTable writes the identification as a two column table.
func (id Identification) WriteTable(w io.Writer) error {
	ver := report.Missing
	if !id.Version.IsZero() {
		ver = id.Version.String()
	}

	rows := [][]string{
		{"Version Text", report.Text(id.VersionText)},
		{"Version", ver},
	}

	for _, e := range signatures.Entries {
		v := report.Pointer(id.Entry(e))
		if b, ok := id.Builds[e]; ok && !id.Entry(e).IsNull() {
			v = fmt.Sprintf("%s (%s)", v, b)
		}
		rows = append(rows, []string{e.String(), v})
	}

	rows = append(rows,
		[]string{"Work RAM", report.Pointer(id.WorkRAM)},
		[]string{"Tracks", fmt.Sprintf("%d", len(id.Tracks))},
	)

	return report.Tabulate(w, []string{"Name", "Value"}, rows)
}

func (id Identification) String() string {
	s := &strings.Builder{}
	_ = id.WriteTable(s)
	return s.String()
}

// Identify searches the image for the GAX Sound Engine. The best possible
// Identification is always returned. Use Identification.OK() to decide if
// the result is usable.
//
// The db argument can be nil, in which case the built-in signatures are used.
// The scanner argument can also be nil, in which case no tracks are found.
func Identify(image []byte, db *signatures.Database, scanner SongScanner) Identification {
	if db == nil {
		db = signatures.NewDatabase()
	}

	id := Identification{
		Builds: make(map[signatures.Entry]string),
	}

	id.VersionText = version.FindText(image, 0)
	id.Version = version.ParseText(id.VersionText)
	if id.VersionText == "" {
		logger.Log(logger.Allow, "gax", "version text not found")
	} else {
		logger.Logf(logger.Allow, "gax", "version text: %s", id.VersionText)
	}

	// the remaining sub-routines are all located after the estimate routine
	// so the search for them starts there
	var lowerBound int

	for _, e := range signatures.Entries {
		m, ok := db.Find(image, lowerBound, e)
		if !ok {
			logger.Logf(logger.Allow, "gax", "%s not found", e)
			continue
		}

		id.setEntry(e, memorymap.PointerTo(m.Address))
		id.Builds[e] = m.Build
		logger.Logf(logger.Allow, "gax", "%s: %v (%s)", e, m.Address, m.Build)

		if e == signatures.Estimate {
			lowerBound = int(memorymap.ToOffset(m.Address))
		}
	}

	id.WorkRAM = findWorkRAM(image, id.Version, id.Play)
	if a, ok := id.WorkRAM.Get(); ok {
		logger.Logf(logger.Allow, "gax", "work ram: %v", a)
	}

	if scanner != nil {
		id.Tracks = scanner.Scan(image, id.Version)
		logger.Logf(logger.Allow, "gax", "%d tracks found", len(id.Tracks))
	}

	return id
}

// the location of the work ram pointer relative to the start of the play
// routine. the v2 location depends on the literal pool offset in the third
// byte of the routine
const (
	workRAMOffsetV3 = 0x124

	workRAMOffsetV2        = 0xf0
	workRAMOffsetV2Short   = 0xc4
	workRAMOffsetV2Long    = 0x134
	workRAMSelectV2Short   = 0x30
	workRAMSelectV2Long    = 0x4c
	workRAMSelectV2Address = 2
)

// findWorkRAM reads the address of the sound engine's work area from the
// literal pool of the play routine. The result is only used if it points to
// RAM.
func findWorkRAM(image []byte, v version.Version, play memorymap.Pointer) memorymap.Pointer {
	a, ok := play.Get()
	if !ok {
		return memorymap.Null
	}
	base := int(memorymap.ToOffset(a))

	var offset int
	if v.Major == 3 {
		offset = base + workRAMOffsetV3
	} else {
		if base+workRAMSelectV2Address >= len(image) {
			return memorymap.Null
		}
		switch image[base+workRAMSelectV2Address] {
		case workRAMSelectV2Short:
			offset = base + workRAMOffsetV2Short
		case workRAMSelectV2Long:
			offset = base + workRAMOffsetV2Long
		default:
			offset = base + workRAMOffsetV2
		}
	}

	if offset+4 > len(image) {
		return memorymap.Null
	}

	ptr := memorymap.Address(binary.LittleEndian.Uint32(image[offset:]))
	if !memorymap.IsRAM(ptr) {
		return memorymap.Null
	}

	return memorymap.PointerTo(ptr)
}
