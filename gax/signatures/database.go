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

package signatures

import (
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"github.com/gaxrip/gaxrip/curated"
	"github.com/gaxrip/gaxrip/logger"
	"gopkg.in/yaml.v3"
)

// Sentinal error patterns for the database.
const (
	EmptyPattern = "signatures: empty pattern for %v (%s)"
	LoadError    = "signatures: %v"
)

// Database is an append-only collection of signatures for each Entry.
type Database struct {
	entries map[Entry][]Signature
}

// NewDatabase returns a database containing the signatures for every known
// build of the sound engine.
func NewDatabase() *Database {
	db := &Database{
		entries: make(map[Entry][]Signature),
	}

	// the built-in lists are copied so that Append() never modifies them
	db.entries[Estimate] = append([]Signature{}, builtinEstimate...)
	db.entries[New] = append([]Signature{}, builtinNew...)
	db.entries[Init] = append([]Signature{}, builtinInit...)
	db.entries[IRQ] = append([]Signature{}, builtinIRQ...)
	db.entries[Play] = append([]Signature{}, builtinPlay...)

	return db
}

// Signatures returns the ordered list of signatures for the Entry. The
// returned slice should not be modified.
func (db *Database) Signatures(e Entry) []Signature {
	return db.entries[e]
}

// Append signatures to the end of the list for the Entry. Appended signatures
// have a lower precedence than the existing signatures.
func (db *Database) Append(e Entry, sigs ...Signature) error {
	for _, s := range sigs {
		if len(s.Pattern) == 0 {
			return curated.Errorf(EmptyPattern, e, s.Build)
		}
	}
	for _, s := range sigs {
		s.Pattern = append([]byte{}, s.Pattern...)
		db.entries[e] = append(db.entries[e], s)
	}
	return nil
}

// Find searches the image for the Entry using the signatures in the database.
func (db *Database) Find(image []byte, lowerBound int, e Entry) (Match, bool) {
	return Find(image, lowerBound, db.entries[e])
}

// the YAML form of a single signature. the pattern is a hex string that may
// contain whitespace for readability
type yamlSignature struct {
	Entry   string `yaml:"entry"`
	Build   string `yaml:"build"`
	Pattern string `yaml:"pattern"`
}

// LoadYAML appends the signatures listed in the YAML document. The document
// is a sequence of mappings with the keys entry, build and pattern. For
// example:
//
//	- entry: play
//	  build: GAX 2.02
//	  pattern: 10b5 2d4e 3168 086b 0028 00d1
//
// The database is not changed if any signature in the document is invalid.
func (db *Database) LoadYAML(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc []yamlSignature
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return curated.Errorf(LoadError, err)
	}

	type pending struct {
		entry Entry
		sig   Signature
	}
	var p []pending

	for _, y := range doc {
		e, err := ParseEntry(y.Entry)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		pattern, err := hex.DecodeString(strings.Join(strings.Fields(y.Pattern), ""))
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		if len(pattern) == 0 {
			return curated.Errorf(EmptyPattern, e, y.Build)
		}
		p = append(p, pending{entry: e, sig: Signature{Build: y.Build, Pattern: pattern}})
	}

	for _, s := range p {
		if err := db.Append(s.entry, s.sig); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "signatures", "added %s signature for %s", s.entry, s.sig.Build)
	}

	return nil
}
