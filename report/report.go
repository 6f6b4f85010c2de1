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

// Package report formats information about a cartridge as plain text tables.
// The output is intended for people and the exact format may change.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gaxrip/gaxrip/agb/arm"
	"github.com/gaxrip/gaxrip/agb/memorymap"
)

// Missing is the text used in a table for a value that is not present.
const Missing = "-"

// Tabulate writes the rows as a table with the header as the first row. A
// line of dashes separates the header from the rows. Rows with fewer cells
// than the widest row are padded with the Missing text. Rows wider than the
// header add columns with an empty heading.
func Tabulate(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	width := len(header)
	for _, r := range rows {
		width = max(width, len(r))
	}

	line := func(cells []string, pad string) {
		c := make([]string, width)
		for i := range c {
			if i < len(cells) {
				c[i] = cells[i]
			} else {
				c[i] = pad
			}
		}
		fmt.Fprintln(tw, strings.Join(c, "\t"))
	}

	line(header, "")

	rule := make([]string, width)
	for i := range rule {
		n := 1
		if i < len(header) {
			n = max(len(header[i]), 1)
		}
		rule[i] = strings.Repeat("-", n)
	}
	line(rule, "")

	for _, r := range rows {
		line(r, Missing)
	}

	return tw.Flush()
}

// Pointer returns the text to use in a table for the pointer.
func Pointer(p memorymap.Pointer) string {
	if a, ok := p.Get(); ok {
		return a.String()
	}
	return Missing
}

// Text returns the text to use in a table for the string. Empty strings are
// shown as missing.
func Text(s string) string {
	if s == "" {
		return Missing
	}
	return s
}

// WriteResetVector writes the disassembly of the instruction at the entry
// address of the cartridge.
func WriteResetVector(w io.Writer, image []byte) error {
	s, err := arm.Disassemble(image, memorymap.EntryAddress)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%v: %08x   %s\n", memorymap.EntryAddress, arm.Word(image), s)
	return err
}
