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

package report_test

import (
	"fmt"
	"testing"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/report"
	"github.com/gaxrip/gaxrip/test"
)

func TestTabulate(t *testing.T) {
	w := &test.Writer{}

	err := report.Tabulate(w, []string{"Name", "Address"}, [][]string{
		{"Title", "0x08001000"},
		{"A much longer title"},
	})
	test.DemandSuccess(t, err)

	// the first column is as wide as the longest cell plus three spaces
	expected := fmt.Sprintf("%-22s%s\n", "Name", "Address") +
		fmt.Sprintf("%-22s%s\n", "----", "-------") +
		fmt.Sprintf("%-22s%s\n", "Title", "0x08001000") +
		fmt.Sprintf("%-22s%s\n", "A much longer title", report.Missing)
	test.ExpectSuccess(t, w.Compare(expected), w.String())
}

func TestTabulateWideRow(t *testing.T) {
	w := &test.Writer{}

	err := report.Tabulate(w, []string{"Name"}, [][]string{
		{"A", "B", "C"},
		{"D"},
	})
	test.DemandSuccess(t, err)

	// no cell is lost and the extra columns have no heading
	expected := "Name       \n" +
		"----   -   -\n" +
		"A      B   C\n" +
		"D      -   -\n"
	test.ExpectSuccess(t, w.Compare(expected), w.String())
}

func TestTabulateEmpty(t *testing.T) {
	w := &test.Writer{}
	err := report.Tabulate(w, []string{"Name"}, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("Name\n----\n"), w.String())
}

func TestValues(t *testing.T) {
	test.ExpectEquality(t, report.Pointer(memorymap.Null), report.Missing)
	test.ExpectEquality(t, report.Pointer(memorymap.PointerTo(0x08000100)), "0x08000100")
	test.ExpectEquality(t, report.Text(""), report.Missing)
	test.ExpectEquality(t, report.Text("GAX"), "GAX")
}

func TestResetVector(t *testing.T) {
	// b 0x080000c0. the instruction found at the start of most cartridges
	image := []byte{0x2e, 0x00, 0x00, 0xea}

	w := &test.Writer{}
	err := report.WriteResetVector(w, image)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, w.Contains("0x08000000: ea00002e"), w.String())
	test.ExpectSuccess(t, w.Contains("(0x080000c0)"), w.String())

	err = report.WriteResetVector(w, image[:3])
	test.ExpectFailure(t, err)
}
