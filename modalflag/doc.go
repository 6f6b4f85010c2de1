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

// Package modalflag is a wrapper for the flag package in the Go standard
// library.  It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// Adding flags is similar to the flag package:
//
//	verbose := md.AddBool("log", false, "echo log to stdout")
//
// In addition to the flag types of the standard library, hexadecimal values
// can be added with AddHex32() and AddHex16(). These are useful for addresses
// and for the parameters that are written into driver blocks. The returned
// values record whether the flag was specified on the command line.
//
// A mode is a special command line argument that when specified, puts the
// program into a different mode of operation. Modes are added with
// AddSubModes(). The first mode in the list is the default mode.
//
//	md.AddSubModes("inspect", "install", "rip")
//
// All sub-mode comparisons are case insensitive and Mode() always returns the
// mode in upper case.
//
//	md.Parse()
//	switch md.Mode() {
//		case "INSPECT":
//			inspect(md)
//		default:
//			fmt.Printf("%s not yet implemented", md.Mode())
//	}
//
// Inside the mode handler NewMode() is called and Parse() is called again to
// handle the flags specific to that mode:
//
//	func inspect(md *modalflag.Modes) error {
//		md.NewMode()
//		dot := md.AddString("dot", "", "write graphviz file")
//		p, err := md.Parse()
//		if err != nil || p != modalflag.ParseContinue {
//			return err
//		}
//		...
//	}
//
// Modes can be chained as deep as required. The Path() function returns the
// list of modes encountered, separated by a forward slash.
//
// A help message is printed automatically when the -help flag is specified.
// The Parse() function returns ParseHelp in that case and the program should
// quit without doing anything further.
package modalflag
