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

package psf

import (
	"encoding/binary"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/curated"
)

// LibTag is the tag that names the library a minigsf depends on.
const LibTag = "_lib"

// size of the header of a GSF program: entry point, load offset and size
const gsfHeaderSize = 12

// GSFProgram is the program section of a GSF file. The data is loaded at the
// offset address and execution starts at the entry address.
type GSFProgram struct {
	Entry  memorymap.Address
	Offset memorymap.Address
	Data   []byte
}

// Bytes returns the program in the form stored in a GSF file.
func (p GSFProgram) Bytes() []byte {
	b := make([]byte, gsfHeaderSize+len(p.Data))
	binary.LittleEndian.PutUint32(b[0:], uint32(p.Entry))
	binary.LittleEndian.PutUint32(b[4:], uint32(p.Offset))
	binary.LittleEndian.PutUint32(b[8:], uint32(len(p.Data)))
	copy(b[gsfHeaderSize:], p.Data)
	return b
}

// ParseGSFProgram is the inverse of GSFProgram.Bytes().
func ParseGSFProgram(b []byte) (GSFProgram, error) {
	if len(b) < gsfHeaderSize {
		return GSFProgram{}, curated.Errorf(FormatError, "gsf program too short")
	}

	size := binary.LittleEndian.Uint32(b[8:])
	if uint64(size) != uint64(len(b)-gsfHeaderSize) {
		return GSFProgram{}, curated.Errorf(FormatError, "gsf program size mismatch")
	}

	return GSFProgram{
		Entry:  memorymap.Address(binary.LittleEndian.Uint32(b[0:])),
		Offset: memorymap.Address(binary.LittleEndian.Uint32(b[4:])),
		Data:   b[gsfHeaderSize:],
	}, nil
}

// Library returns a GSF library containing the whole cartridge image.
func Library(image []byte, tags ...Tag) File {
	return File{
		Version: VersionGSF,
		Program: GSFProgram{
			Entry:  memorymap.EntryAddress,
			Offset: memorymap.ROMOrigin,
			Data:   image,
		}.Bytes(),
		Tags: tags,
	}
}

// Mini returns a minigsf that loads data at the address and depends on the
// library.
func Mini(library string, at memorymap.Address, data []byte, tags ...Tag) File {
	return File{
		Version: VersionGSF,
		Program: GSFProgram{
			Entry:  memorymap.EntryAddress,
			Offset: at,
			Data:   data,
		}.Bytes(),
		Tags: append([]Tag{{Key: LibTag, Value: library}}, tags...),
	}
}
