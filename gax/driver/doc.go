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

// Package driver describes the machine code templates that are installed into
// a cartridge in order to turn it into a GSF library.
//
// A template is a block of code and a table of offsets into that code. The
// offsets say where the addresses of the sound engine sub-routines and the
// driver's work area should be written after the code has been copied into the
// cartridge. The code itself is supplied data and is not generated or checked
// by this package beyond its length.
//
// Templates come in pairs, held by the Set type. One template is for version 3
// of the GAX Sound Engine and the other is for every earlier version.
// LoadManifest() loads a Set from a directory containing a manifest file and
// the code files it names.
package driver
