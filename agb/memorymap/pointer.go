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

// Pointer is an optional Address. The zero value is the null pointer.
//
// A failed lookup results in a null Pointer and the address can only be
// retrieved with Get(), which forces the caller to consider the null case.
type Pointer struct {
	addr  Address
	valid bool
}

// Null is the pointer that points nowhere.
var Null = Pointer{}

// PointerTo returns a valid Pointer to the address.
func PointerTo(a Address) Pointer {
	return Pointer{addr: a, valid: true}
}

// Get returns the address and true, or false if the pointer is null.
func (p Pointer) Get() (Address, bool) {
	return p.addr, p.valid
}

// IsNull returns true if the pointer does not point anywhere.
func (p Pointer) IsNull() bool {
	return !p.valid
}

// Encode returns the address as it should appear in a fixed size binary
// block. A null pointer is encoded as zero.
func (p Pointer) Encode() uint32 {
	if !p.valid {
		return 0
	}
	return uint32(p.addr)
}

func (p Pointer) String() string {
	if !p.valid {
		return "-"
	}
	return p.addr.String()
}
