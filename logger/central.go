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

import "io"

// the central log used by the package level functions. the number of entries
// is bounded so that scanning a large cartridge with verbose logging cannot
// grow the log without limit
var central = NewLogger(maxCentral)

const maxCentral = 256

// Log adds an entry to the central log.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// SetEcho prints new entries of the central log to the writer. A nil writer
// turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}

// Tail writes the last entries of the central log to the writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// BorrowLog gives the function access to the entries of the central log.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
