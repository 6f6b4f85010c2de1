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

// Package curated creates errors that carry the pattern they were made from.
// Packages export the patterns of the errors they return so that callers can
// test for them:
//
//	const OutOfRange = "gax: driver at %v (%d bytes) does not fit in image (%d bytes)"
//
//	err := curated.Errorf(OutOfRange, target, size, len(image))
//	if curated.Is(err, OutOfRange) {
//		...
//	}
//
// Is() looks at the first curated error in the chain. Has() looks at every
// curated error in the chain, including those used as placeholder values:
//
//	err = curated.Errorf("rip: %v", err)
//	curated.Has(err, OutOfRange) // true
//
// IsAny() is true for any curated error. Errors that are not curated can be
// treated as unexpected.
//
// Messages are chains of parts separated by ": ". Identical adjacent parts are
// printed once, so a "gax: %v" error wrapping a "gax: ..." error does not
// stutter.
//
// Curated errors implement Unwrap() []error so that errors.Is() and
// errors.As() see the error values used as placeholders.
package curated
