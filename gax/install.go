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

package gax

import (
	"encoding/binary"

	"github.com/gaxrip/gaxrip/agb/arm"
	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/curated"
	"github.com/gaxrip/gaxrip/gax/driver"
	"github.com/gaxrip/gaxrip/gax/version"
	"github.com/gaxrip/gaxrip/logger"
)

// Sentinal error patterns returned by Install().
const (
	InvalidTarget            = "gax: invalid driver address: %v: %s"
	IncompleteIdentification = "gax: identification of GAX Sound Engine is incomplete\n\n%s"
	OutOfRange               = "gax: driver at %v (%d bytes) does not fit in image (%d bytes)"
)

const (
	// the driver work area is placed at the start of IWRAM unless told
	// otherwise
	DefaultWorkRAM = memorymap.IWRAMOrigin

	// if the sound engine's own work area is in IWRAM and below this address
	// then the driver work area is placed immediately after it. the value was
	// found by experiment
	workRAMLimit = memorymap.IWRAMOrigin + 0x4000

	// distance from the engine work ram pointer to the driver work area
	workRAMShift = 4
)

// value of the FX parameter byte in the v3 driver
const (
	fxParamV3      = 0x2c
	fxParamV305    = 0x30
	fxParamV305Min = 5
)

// ResolveWorkAddress returns the address of the driver's work area. If the
// work pointer is not null then it is returned unchanged.
//
// Otherwise, the DefaultWorkRAM address is used unless the sound engine's own
// work area is near the start of IWRAM. In that case the driver work area is
// moved to just after the engine's work area pointer. Using EWRAM instead
// would avoid the conflict but the slower memory can upset playback.
func ResolveWorkAddress(work memorymap.Pointer, id Identification) memorymap.Address {
	if a, ok := work.Get(); ok {
		return a
	}

	addr := DefaultWorkRAM
	if p, ok := id.WorkRAM.Get(); ok && memorymap.SamePage(p, addr) && p < workRAMLimit {
		addr = p + workRAMShift
	}

	return addr
}

func fxParam(v version.Version) uint8 {
	if v.Minor >= fxParamV305Min {
		return fxParamV305
	}
	return fxParamV3
}

// Install the driver template suitable for the identified version of the
// sound engine at the target address. The first instruction of the image is
// replaced with a branch to the driver.
//
// The work argument is the address of the driver's work area. If it is null
// then an address is chosen by ResolveWorkAddress(). The workSize argument is
// only used by the v2 driver.
//
// The image is not changed if an error is returned.
func Install(image []byte, drivers driver.Set, target memorymap.Address, work memorymap.Pointer, workSize uint32, id Identification) error {
	if !memorymap.IsROM(target) {
		return curated.Errorf(InvalidTarget, target, "not a ROM address")
	}
	if target&0x03 != 0 {
		return curated.Errorf(InvalidTarget, target, "not word aligned")
	}

	if !id.OK() {
		return curated.Errorf(IncompleteIdentification, id)
	}

	// the set rules make sure that the slots patched below exist in the
	// template for the version
	if err := drivers.Validate(); err != nil {
		return err
	}
	tmpl := drivers.For(id.Version)

	offset := int(memorymap.ToOffset(target))
	if offset < 4 {
		return curated.Errorf(InvalidTarget, target, "overlaps entry vector")
	}
	if offset+tmpl.Size() > len(image) {
		return curated.Errorf(OutOfRange, target, tmpl.Size(), len(image))
	}

	branch, err := arm.Branch(memorymap.EntryAddress, target)
	if err != nil {
		return curated.Errorf(InvalidTarget, target, err)
	}

	workAddr := ResolveWorkAddress(work, id)

	// nothing can fail from this point on

	code := image[offset : offset+tmpl.Size()]
	copy(code, tmpl.Code)

	put := func(slot int, v uint32) {
		if slot != driver.Unused {
			binary.LittleEndian.PutUint32(code[slot:], v)
		}
	}

	// the sub-routines are all Thumb code
	thumb := func(p memorymap.Pointer) uint32 {
		return p.Encode() | 0x01
	}

	o := tmpl.Offsets
	put(o.Estimate, thumb(id.Estimate))
	put(o.New, thumb(id.New))
	put(o.Init, thumb(id.Init))
	put(o.IRQ, thumb(id.IRQ))
	put(o.Play, thumb(id.Play))
	put(o.WorkRAM, uint32(workAddr))
	put(o.WorkRAMSize, workSize)

	if o.FXParam != driver.Unused {
		code[o.FXParam] = fxParam(id.Version)
	}

	binary.LittleEndian.PutUint32(image, branch)

	logger.Logf(logger.Allow, "gax", "installed %s at %v (work ram %v)", tmpl.Name, target, workAddr)

	return nil
}
