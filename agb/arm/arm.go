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

// Package arm encodes and decodes the few ARM instructions that are needed
// when redirecting the entry point of a cartridge.
package arm

import (
	"encoding/binary"
	"fmt"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/curated"
	"golang.org/x/arch/arm/armasm"
)

// BranchOutOfRange is the error pattern returned by Branch() when the
// destination cannot be reached with a single instruction.
const BranchOutOfRange = "arm: branch out of range: %v to %v"

// DisassemblyError is the error pattern returned by Disassemble() when the
// data does not hold an instruction that can be decoded.
const DisassemblyError = "arm: cannot disassemble: %v"

const (
	// condition field value for "always"
	condAL = 0xe0000000

	// opcode bits for B (without link)
	opB = 0x0a000000

	// the PC is two instructions ahead of the instruction being executed
	pipelineOffset = 8

	// the offset field is a signed 24 bit word count
	offsetMask = 0x00ffffff
	offsetMin  = -(1 << 25)
	offsetMax  = (1 << 25) - 4
)

// Branch returns the encoding of an unconditional B instruction located at
// address from that jumps to address to. The low two bits of the distance are
// discarded.
func Branch(from, to memorymap.Address) (uint32, error) {
	offset := int64(to) - int64(from) - pipelineOffset
	if offset < offsetMin || offset > offsetMax {
		return 0, curated.Errorf(BranchOutOfRange, from, to)
	}
	return condAL | opB | (uint32(offset>>2) & offsetMask), nil
}

// Disassemble returns the GNU syntax of the 32 bit ARM instruction at the
// start of data. The PC value is used to resolve branch destinations.
func Disassemble(data []byte, pc memorymap.Address) (string, error) {
	if len(data) < 4 {
		return "", curated.Errorf(DisassemblyError, "not enough data")
	}

	inst, err := armasm.Decode(data[:4], armasm.ModeARM)
	if err != nil {
		return "", curated.Errorf(DisassemblyError, err)
	}

	s := armasm.GNUSyntax(inst)

	// GNU syntax reports branches relative to the current instruction. add the
	// absolute destination so that the output can be compared with the driver
	// address
	if rel, ok := inst.Args[0].(armasm.PCRel); ok && isBranch(inst.Op) {
		dest := int64(pc) + pipelineOffset + int64(rel)
		s = fmt.Sprintf("%s (%#08x)", s, uint32(dest))
	}

	return s, nil
}

func isBranch(op armasm.Op) bool {
	return op == armasm.B || op == armasm.BL
}

// Word reads the little-endian 32 bit value at the start of data.
func Word(data []byte) uint32 {
	return binary.LittleEndian.Uint32(data)
}
