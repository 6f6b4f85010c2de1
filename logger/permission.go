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

// Permission decides whether a log request should create an entry.
type Permission interface {
	AllowLogging() bool
}

type allowAlways struct{}

func (allowAlways) AllowLogging() bool {
	return true
}

// Allow is the Permission for entries that should always be made.
var Allow Permission = allowAlways{}

// Verbosity is a Permission that can be switched on and off. Scanners that
// log every candidate they consider use a Verbosity value so that the caller
// decides whether the detail is wanted.
type Verbosity bool

// AllowLogging implements the Permission interface.
func (v Verbosity) AllowLogging() bool {
	return bool(v)
}
