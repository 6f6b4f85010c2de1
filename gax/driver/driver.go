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

package driver

import (
	"fmt"

	"github.com/gaxrip/gaxrip/curated"
	"github.com/gaxrip/gaxrip/gax/version"
)

// InvalidTemplate is the error pattern for all template validation failures.
const InvalidTemplate = "driver: invalid template: %s: %s"

// Unused is the value of an Offsets field that the template does not use.
const Unused = -1

// ParamsSize is the size of the per-track parameter block that is placed at
// the Params offset of the template when a minigsf is loaded.
const ParamsSize = 20

// Offsets into the template code of the values that are patched during
// installation. Every offset refers to a little-endian 32 bit slot except for
// FXParam, which refers to a single byte.
type Offsets struct {
	// addresses of the sound engine sub-routines
	Estimate int
	New      int
	Init     int
	IRQ      int
	Play     int

	// the work area used by the driver
	WorkRAM     int
	WorkRAMSize int

	// the immediate value of the instruction that selects the FX parameter
	// table. a single byte
	FXParam int

	// start of the parameter block
	Params int
}

// NewOffsets returns an Offsets instance with every field set to Unused.
func NewOffsets() Offsets {
	return Offsets{
		Estimate:    Unused,
		New:         Unused,
		Init:        Unused,
		IRQ:         Unused,
		Play:        Unused,
		WorkRAM:     Unused,
		WorkRAMSize: Unused,
		FXParam:     Unused,
		Params:      Unused,
	}
}

// Template is a block of machine code that is copied into the cartridge and
// the table of offsets that must be patched after copying.
type Template struct {
	Name    string
	Code    []byte
	Offsets Offsets
}

// Size of the template in bytes.
func (t Template) Size() int {
	return len(t.Code)
}

type slot struct {
	name   string
	offset int
	size   int
}

func (t Template) slots() []slot {
	return []slot{
		{"estimate", t.Offsets.Estimate, 4},
		{"new", t.Offsets.New, 4},
		{"init", t.Offsets.Init, 4},
		{"irq", t.Offsets.IRQ, 4},
		{"play", t.Offsets.Play, 4},
		{"workram", t.Offsets.WorkRAM, 4},
		{"workramsize", t.Offsets.WorkRAMSize, 4},
		{"fxparam", t.Offsets.FXParam, 1},
		{"params", t.Offsets.Params, ParamsSize},
	}
}

// Validate checks that every slot used by the template lies inside the code
// and that no two slots overlap. The content of the code is not checked.
func (t Template) Validate() error {
	if len(t.Code) == 0 {
		return curated.Errorf(InvalidTemplate, t.Name, "no code")
	}

	required := []struct {
		name   string
		offset int
	}{
		{"new", t.Offsets.New},
		{"init", t.Offsets.Init},
		{"irq", t.Offsets.IRQ},
		{"play", t.Offsets.Play},
		{"workram", t.Offsets.WorkRAM},
	}
	for _, r := range required {
		if r.offset == Unused {
			return curated.Errorf(InvalidTemplate, t.Name, fmt.Sprintf("%s offset is required", r.name))
		}
	}

	var used []slot
	for _, s := range t.slots() {
		if s.offset == Unused {
			continue
		}
		if s.offset < 0 || s.offset+s.size > len(t.Code) {
			return curated.Errorf(InvalidTemplate, t.Name,
				fmt.Sprintf("%s offset (%#x) outside of code (%d bytes)", s.name, s.offset, len(t.Code)))
		}
		for _, u := range used {
			if s.offset < u.offset+u.size && u.offset < s.offset+s.size {
				return curated.Errorf(InvalidTemplate, t.Name,
					fmt.Sprintf("%s offset overlaps %s offset", s.name, u.name))
			}
		}
		used = append(used, s)
	}

	return nil
}

// Set is the pair of templates needed to support every version of the sound
// engine. Version 3 of the engine requires its own template. Every earlier
// version uses the same template.
type Set struct {
	Gax2 Template
	Gax3 Template
}

// For returns the template to use for the version.
func (s Set) For(v version.Version) Template {
	if v.Major == 3 {
		return s.Gax3
	}
	return s.Gax2
}

// Validate both templates in the set. In addition to the checks performed by
// Template.Validate(), the v3 template must have an Estimate and an FXParam
// offset and no WorkRAMSize offset. The v2 template is the opposite.
func (s Set) Validate() error {
	if err := s.Gax2.Validate(); err != nil {
		return err
	}
	if err := s.Gax3.Validate(); err != nil {
		return err
	}

	if s.Gax3.Offsets.Estimate == Unused {
		return curated.Errorf(InvalidTemplate, s.Gax3.Name, "estimate offset is required")
	}
	if s.Gax3.Offsets.FXParam == Unused {
		return curated.Errorf(InvalidTemplate, s.Gax3.Name, "fxparam offset is required")
	}
	if s.Gax3.Offsets.WorkRAMSize != Unused {
		return curated.Errorf(InvalidTemplate, s.Gax3.Name, "workramsize offset is not supported")
	}

	if s.Gax2.Offsets.WorkRAMSize == Unused {
		return curated.Errorf(InvalidTemplate, s.Gax2.Name, "workramsize offset is required")
	}
	if s.Gax2.Offsets.Estimate != Unused {
		return curated.Errorf(InvalidTemplate, s.Gax2.Name, "estimate offset is not supported")
	}
	if s.Gax2.Offsets.FXParam != Unused {
		return curated.Errorf(InvalidTemplate, s.Gax2.Name, "fxparam offset is not supported")
	}

	return nil
}
