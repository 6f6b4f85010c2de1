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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// parseHex interprets s as a hexadecimal number. The string can be prefixed
// with "0x" or "$" but the number is always hexadecimal, even without the
// prefix.
func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	case strings.HasPrefix(s, "$"):
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("empty hexadecimal value")
	}
	return strconv.ParseUint(s, 16, bits)
}

// Hex32 is a flag.Value for 32 bit hexadecimal values, such as addresses.
type Hex32 struct {
	Value uint32

	// IsSet is true if the flag was specified on the command line
	IsSet bool
}

// String implements the flag.Value interface.
func (h *Hex32) String() string {
	if h == nil {
		return ""
	}
	return fmt.Sprintf("%#08x", h.Value)
}

// Set implements the flag.Value interface.
func (h *Hex32) Set(s string) error {
	v, err := parseHex(s, 32)
	if err != nil {
		return err
	}
	h.Value = uint32(v)
	h.IsSet = true
	return nil
}

// Hex16 is a flag.Value for 16 bit hexadecimal values.
type Hex16 struct {
	Value uint16
	IsSet bool
}

// String implements the flag.Value interface.
func (h *Hex16) String() string {
	if h == nil {
		return ""
	}
	return fmt.Sprintf("%#04x", h.Value)
}

// Set implements the flag.Value interface.
func (h *Hex16) Set(s string) error {
	v, err := parseHex(s, 16)
	if err != nil {
		return err
	}
	h.Value = uint16(v)
	h.IsSet = true
	return nil
}
