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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes handles command line arguments for a program with modes. The Output
// field should be set before calling Parse() or help messages will not be
// seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// flags for the current mode. a new flagset is created on every call to
	// NewArgs() and NewMode(). not to be parsed directly
	flags *flag.FlagSet

	// the arguments given to NewArgs() and the index of the first argument
	// not yet consumed by a mode
	args    []string
	argsIdx int

	// sub-modes that can follow the current mode. the first is the default
	subModes []string

	// the modes selected by successive calls to Parse(). never reset
	path []string

	// text shown after the flag list in help messages
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, joined with a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs resets the argument list and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that the remaining arguments belong to a new mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
}

// AdditionalHelp is printed after the list of flags in the help message.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added then
	// Mode() is the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// the error is returned as the second return value
	ParseError
)

// Parse the arguments for the current mode:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Printf("* error: %v\n", err)
//		return
//	}
//
// If the first argument after the flags names a sub-mode then it is
// consumed. Otherwise the default sub-mode is selected.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])
	if err == flag.ErrHelp {
		md.help()
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// unrecognised flags with sub-modes defined are left for the default
	// sub-mode to deal with
	mode := md.subModes[0]
	if err == nil {
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that is not a flag or sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes to the current mode. The first sub-mode is the default.
// Sub-modes are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddHex32 flag for next call to Parse(). See the Hex32 type for the accepted
// formats.
func (md *Modes) AddHex32(name string, value uint32, usage string) *Hex32 {
	h := &Hex32{Value: value}
	md.flags.Var(h, name, usage)
	return h
}

// AddHex16 flag for next call to Parse().
func (md *Modes) AddHex16(name string, value uint16, usage string) *Hex16 {
	h := &Hex16{Value: value}
	md.flags.Var(h, name, usage)
	return h
}
