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

// Package romloader is used to load cartridge images from disk. The Loader
// type records the SHA1 hash of the data and the information in the
// cartridge header.
//
//	ld := romloader.NewLoader("game.gba")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//
// Once loaded the Data field is the image. The Loader does not write
// anything back to disk.
package romloader
