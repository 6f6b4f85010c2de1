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

// Package psf reads and writes files in the PSF family of formats. Only the
// GSF variant, used for Game Boy Advance music, is of interest here.
//
// A PSF file is a 16 byte header followed by an optional reserved area, the
// zlib compressed program and an optional tag section. The tag section starts
// with the text "[TAG]" and is a list of key=value lines.
//
// The program of a GSF file is itself a small header followed by data to be
// loaded into the Game Boy Advance address space. See GSFProgram.
package psf
