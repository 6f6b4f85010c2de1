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

// Package gax identifies the GAX Sound Engine in a Game Boy Advance cartridge
// and installs the driver that turns the cartridge into a GSF library.
//
// Identify() searches the image and returns an Identification. Searching never
// fails but the Identification may be incomplete, in which case OK() returns
// false and the driver cannot be installed.
//
// Install() copies the driver template for the identified version into the
// image, patches the addresses of the sound engine sub-routines into it and
// replaces the first instruction of the cartridge with a branch to the driver.
// No change is made to the image if the driver cannot be installed.
//
// Each track is then played by loading a minigsf containing the TrackParams
// block over the parameter area of the driver.
package gax
