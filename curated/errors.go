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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an error that remembers the pattern it was created with.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The first argument is a pattern rather
// than a format because it is also the identity of the error, as tested by
// Is() and Has(). Packages export their patterns as constants for that
// purpose.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. Adjacent parts of the message that
// are identical are reduced to one. This happens when a curated error wraps
// another error with the same prefix.
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ")

	n := parts[:1]
	for _, p := range parts[1:] {
		if p != n[len(n)-1] {
			n = append(n, p)
		}
	}

	return strings.Join(n, ": ")
}

// Unwrap returns the error values used as placeholders in the pattern. This
// allows errors.Is() and errors.As() to see through curated errors.
func (er curated) Unwrap() []error {
	var errs []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// IsAny returns true if the error, or the first error it wraps, is a curated
// error.
func IsAny(err error) bool {
	var er curated
	return errors.As(err, &er)
}

// Is returns true if the error is a curated error created with the pattern.
// Curated errors wrapped with fmt.Errorf() are also recognised.
func Is(err error, pattern string) bool {
	var er curated
	if !errors.As(err, &er) {
		return false
	}
	return er.pattern == pattern
}

// Has returns true if a curated error created with the pattern is anywhere in
// the error chain.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok && er.pattern == pattern {
		return true
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, w := range e.Unwrap() {
			if Has(w, pattern) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Has(e.Unwrap(), pattern)
	}

	return false
}
