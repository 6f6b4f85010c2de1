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

// the patterns in this file are the first bytes of each Thumb sub-routine as
// emitted for each known engine build. the order of each list is important:
// earlier entries take precedence

// the register save sequence shared by several sub-routines:
//
//	push {r4-r7,lr}
//	mov r7,r10
//	mov r6,r9
//	mov r5,r8
//	push {r5-r7}
const saveHigh = "\xf0\xb5\x57\x46\x4e\x46\x45\x46\xe0\xb4"

var builtinEstimate = []Signature{
	{Build: "GAX 3", Pattern: []byte(saveHigh + "\x82\xb0\x07\x1c\x00\x24\x00\x20\x00\x90")},
	{Build: "GAX 2.3", Pattern: []byte(saveHigh + "\x8b\xb0\x00\x90\x00\x20\x80\x46\x00\x21")},
	{Build: "GAX 2.2", Pattern: []byte(saveHigh + "\x8a\xb0\x81\x46\x00\x27\x00\x20\x02\x90")},
	{Build: "GAX 2.1", Pattern: []byte(saveHigh + "\x88\xb0\x00\x90\x00\x27\x00\x20\x02\x90")},
	{Build: "GAX 2.02", Pattern: []byte(saveHigh + "\x87\xb0\x00\x90\x00\x27\x00\x20\x02\x90")},
}

var builtinNew = []Signature{
	{Build: "GAX 2.3 and GAX 3", Pattern: []byte("\xf0\xb5\x47\x46\x80\xb4\x81\xb0\x06\x1c\x00\x2e")},
	{Build: "GAX 2.2", Pattern: []byte("\x10\xb5\x04\x1c\x00\x2c\x09\xd1\x02\x48\x03\x49")},
}

var builtinInit = []Signature{
	{Build: "GAX 3", Pattern: []byte(saveHigh + "\x81\xb0\x07\x1c\x00\x26\x0e\x48\x39\x68")},
	{Build: "GAX 3.05-ND", Pattern: []byte(saveHigh + "\x81\xb0\x07\x1c\x00\x22\x0e\x48\x39\x68")},
	{Build: "GAX 2.3", Pattern: []byte(saveHigh + "\x86\xb0\x07\x1c\x00\x20\x05\x90\x3a\x68")},
	{Build: "GAX 2.2", Pattern: []byte(saveHigh + "\x84\xb0\x07\x1c\x00\x20\x82\x46\x3c\x68")},
	{Build: "GAX 2.1", Pattern: []byte(saveHigh + "\x84\xb0\x07\x1c\x00\x20\x81\x46\x3b\x68")},
	{Build: "GAX 2.02", Pattern: []byte(saveHigh + "\x83\xb0\x07\x1c\x00\x20\x81\x46\x3b\x68")},
}

var builtinIRQ = []Signature{
	{Build: "GAX 3", Pattern: []byte(
		"\xf0\xb5\x3b\x48\x02\x68\x11\x68\x3a\x48\x81\x42\x6d\xd1\x50\x6d" +
			"\x00\x28\x6a\xd0\x50\x6d\x01\x28\x1a\xd1\x02\x20\x50\x65\x36\x49")},
	{Build: "GAX 3.05-ND", Pattern: []byte(
		"\xf0\xb5\x33\x48\x03\x68\x1a\x68\x32\x49\x07\x1c\x8a\x42\x5b\xd1" +
			"\x58\x6d\x00\x28\x58\xd0\x58\x6d\x01\x28\x1a\xd1\x02\x20\x58\x65")},
	{Build: "GAX 2.2 and 2.3", Pattern: []byte(
		"\xf0\xb5\x3f\x48\x02\x68\x11\x68\x3e\x48\x81\x42\x75\xd1\x90\x6b" +
			"\x00\x28\x72\xd0\x90\x6b\x01\x28\x1a\xd1\x3b\x49\x80\x20\x08\x80")},
	{Build: "GAX 2.1", Pattern: []byte(
		"\x10\xb5\x27\x4c\x23\x68\x19\x68\x26\x48\x81\x42\x44\xd1\x18\x6b" +
			"\x00\x28\x41\xd0\x18\x6b\x01\x28\x10\xd1\x23\x49\x80\x20\x08\x80")},
	{Build: "GAX 2.02", Pattern: []byte(
		"\x10\xb5\x25\x4c\x23\x68\x19\x68\x24\x48\x81\x42\x40\xd1\x18\x6b" +
			"\x00\x28\x3d\xd0\x18\x6b\x01\x28\x10\xd1\x21\x49\x80\x20\x08\x80")},
}

// there is no known signature for the 2.02 play routine
var builtinPlay = []Signature{
	{Build: "GAX 3", Pattern: []byte("\x70\xb5\x81\xb0\x47\x48\x01\x68\x48\x6d\x00\x28\x00\xd1")},
	{Build: "GAX 2.3", Pattern: []byte("\xf0\xb5\x81\xb0\x3a\x48\x01\x68\x88\x6b\x00\x28\x00\xd1")},
	{Build: "GAX 2.2", Pattern: []byte("\xf0\xb5\x30\x4d\x29\x68\x88\x6b\x00\x28\x00\xd1\xd4\xe0")},
	{Build: "GAX 2.1", Pattern: []byte("\x70\xb5\x4c\x4e\x31\x68\x08\x6b\x00\x28\x00\xd1\x8e\xe0")},
}
