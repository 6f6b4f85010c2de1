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

package memorymap

import "fmt"

// Address is a location in the 32 bit address space of the AGB. The region
// an address belongs to is decided by the high byte.
type Address uint32

func (a Address) String() string {
	return fmt.Sprintf("%#08x", uint32(a))
}

// Region origins and other fixed addresses of the AGB memory map.
const (
	EWRAMOrigin Address = 0x02000000
	IWRAMOrigin Address = 0x03000000
	ROMOrigin   Address = 0x08000000

	// the CPU starts executing from the first word of the cartridge
	EntryAddress = ROMOrigin

	// the ROM is visible through two high byte values. the second value is the
	// top half of a 32MB ROM
	romHighByte       = 0x08
	romMirrorHighByte = 0x09
	iwramHighByte     = 0x03
	ewramHighByte     = 0x02

	// stripping the region leaves an offset into a 32MB space
	offsetMask = 0x01ffffff

	// page mask used when checking whether two addresses are in the same
	// memory domain
	pageMask = 0xff000000
)

// ToOffset strips the region from the address, leaving a flat byte offset.
// For ROM addresses the result is an offset into the cartridge image.
func ToOffset(a Address) uint32 {
	return uint32(a) & offsetMask
}

// ToROMAddress tags the offset as a ROM address.
func ToROMAddress(offset uint32) Address {
	return ROMOrigin | Address(offset&offsetMask)
}

// ToIWRAMAddress tags the offset as an IWRAM address.
func ToIWRAMAddress(offset uint32) Address {
	return IWRAMOrigin | Address(offset&offsetMask)
}

// ToEWRAMAddress tags the offset as an EWRAM address.
func ToEWRAMAddress(offset uint32) Address {
	return EWRAMOrigin | Address(offset&offsetMask)
}

func highByte(a Address) uint8 {
	return uint8(a >> 24)
}

// IsROM returns true if the address points into cartridge ROM.
func IsROM(a Address) bool {
	hb := highByte(a)
	return hb == romHighByte || hb == romMirrorHighByte
}

// IsIWRAM returns true if the address points into the fast on-chip RAM.
func IsIWRAM(a Address) bool {
	return highByte(a) == iwramHighByte
}

// IsEWRAM returns true if the address points into the slower external RAM.
func IsEWRAM(a Address) bool {
	return highByte(a) == ewramHighByte
}

// IsRAM returns true if the address is in either of the RAM regions.
func IsRAM(a Address) bool {
	return IsIWRAM(a) || IsEWRAM(a)
}

// SamePage returns true if both addresses share the same high byte.
func SamePage(a, b Address) bool {
	return a&pageMask == b&pageMask
}
