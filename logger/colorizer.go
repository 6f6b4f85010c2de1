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

package logger

import (
	"io"
	"strings"
)

// ANSI sequences used by the Colorizer.
const (
	penTag    = "\033[36m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is drawn in a different colour to the detail.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	var s strings.Builder

	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			s.WriteString(l)
			continue
		}
		s.WriteString(penTag)
		s.WriteString(tag)
		s.WriteString(penNormal)
		s.WriteString(": ")
		s.WriteString(detail)
	}

	_, err = io.WriteString(c.out, s.String())
	if err != nil {
		return 0, err
	}

	// report the number of bytes from p that were written, not the number of
	// bytes including the colour sequences
	return len(p), nil
}
