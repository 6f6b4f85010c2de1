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

// Package signatures locates the sub-routines of the GAX Sound Engine by
// searching a cartridge image for known byte patterns.
//
// Each build of the engine compiles to slightly different code and so each
// Entry has an ordered list of alternative patterns. Patterns are tried in
// order and the first pattern that occurs anywhere in the image wins. The
// order therefore matters when a pattern for one build happens to also occur
// in an image that uses another build.
//
// The Database type holds the lists. New builds can be supported by adding
// patterns to the database, either with Append() or by loading a YAML file
// with LoadYAML(). The scanning code does not change.
package signatures
