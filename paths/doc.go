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

// Package paths locates the resources used by Gaxrip. Resources are in the
// .gaxrip directory if it exists in the current directory. Otherwise they are
// in the gaxrip directory of the user's configuration directory. On a Linux
// system that would be something like:
//
//	/home/user/.config/gaxrip/
//
// The driver manifest and templates are expected in the DriverDir resource
// and additional signatures in the SignatureFile resource.
package paths
