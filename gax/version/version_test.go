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

package version_test

import (
	"testing"

	"github.com/gaxrip/gaxrip/gax/version"
	"github.com/gaxrip/gaxrip/test"
)

func image(text string) []byte {
	b := make([]byte, 0x100)
	b = append(b, []byte(text)...)
	return append(b, 0x00, 0xff, 0xff)
}

func TestFindText(t *testing.T) {
	img := image("GAX Sound Engine v3.05-ND (Jun 30 2004) \xa9 Shin'en Multimedia. Code: B.Wodok")
	test.ExpectEquality(t, version.FindText(img, 0), "GAX Sound Engine v3.05-ND (Jun 30 2004)")

	// no copyright symbol
	img = image("GAX Sound Engine v3.05")
	test.ExpectEquality(t, version.FindText(img, 0), "GAX Sound Engine v3.05")

	// lower bound beyond the marker
	test.ExpectEquality(t, version.FindText(img, 0x101), "")

	// no marker
	test.ExpectEquality(t, version.FindText([]byte("nothing to see here"), 0), "")
	test.ExpectEquality(t, version.FindText(nil, 0), "")
}

func TestFindTextLimit(t *testing.T) {
	long := "GAX Sound Engine 2.3 "
	for len(long) < 200 {
		long += "x"
	}
	text := version.FindText(image(long), 0)
	test.ExpectEquality(t, len(text), 128)
}

func TestParseText(t *testing.T) {
	v := version.ParseText(version.FindText(image("GAX Sound Engine v3.05"), 0))
	test.ExpectEquality(t, v, version.Version{Major: 3, Minor: 5})

	v = version.ParseText("GAX Sound Engine V2.3 (Apr 2002)")
	test.ExpectEquality(t, v, version.Version{Major: 2, Minor: 3})

	v = version.ParseText("GAX Sound Engine 2.02")
	test.ExpectEquality(t, v, version.Version{Major: 2, Minor: 2})

	v = version.ParseText("GAX Sound Engine v3.05-ND (Jun 30 2004)")
	test.ExpectEquality(t, v, version.Version{Major: 3, Minor: 5})

	// major version only
	v = version.ParseText("GAX Sound Engine v3")
	test.ExpectEquality(t, v, version.Version{Major: 3})
}

func TestParseTextFailure(t *testing.T) {
	// marker with nothing following
	v := version.ParseText(version.FindText(image("GAX Sound Engine "), 0))
	test.ExpectSuccess(t, v.IsZero())

	v = version.ParseText("GAX Sound Engine v")
	test.ExpectSuccess(t, v.IsZero())

	v = version.ParseText("GAX Sound Engine vX.Y")
	test.ExpectSuccess(t, v.IsZero())

	v = version.ParseText("")
	test.ExpectSuccess(t, v.IsZero())

	v = version.ParseText("GAX Sound Engine v99999999.1")
	test.ExpectSuccess(t, v.IsZero())
}

func TestOrdering(t *testing.T) {
	test.ExpectSuccess(t, version.Version{2, 2}.Less(version.Version{2, 3}))
	test.ExpectSuccess(t, version.Version{2, 30}.Less(version.Version{3, 0}))
	test.ExpectFailure(t, version.Version{3, 5}.Less(version.Version{3, 5}))
	test.ExpectEquality(t, version.Version{3, 5}.String(), "3.5")
	test.ExpectEquality(t, version.Version{}.String(), "unknown")
}
