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

// Package memorymap describes the AGB address space as far as it matters for
// patching a cartridge image. The regions of interest are:
//
//	EWRAM	0x02000000	256KB of slow external RAM
//	IWRAM	0x03000000	32KB of fast on-chip RAM
//	ROM	0x08000000	up to 32MB of cartridge ROM (high byte 0x08 or 0x09)
//
// The functions in this package are pure and total over the 32 bit address
// space. The region boundaries must match the hardware exactly because the
// predicates are used to validate pointers that are read out of the image.
//
// Lookups that can fail return a Pointer rather than an Address.
package memorymap
