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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// the kind of value a flag takes, as shown in the help message
func kind(f *flag.Flag) string {
	switch f.Value.(type) {
	case *Hex32, *Hex16:
		return "hex"
	}
	name, _ := flag.UnquoteUsage(f)
	return name
}

// defaults that are not worth mentioning in the help message
func zeroDefault(s string) bool {
	switch s {
	case "", "false", "0", "0x00000000", "0x0000":
		return true
	}
	return false
}

// help writes the help message for the current mode to the Output writer
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var flags []*flag.Flag
	md.flags.VisitAll(func(f *flag.Flag) {
		flags = append(flags, f)
	})

	if len(flags) == 0 && len(md.subModes) == 0 {
		if md.Path() == "" {
			io.WriteString(md.Output, "No help available\n")
		} else {
			fmt.Fprintf(md.Output, "No help available for %s mode\n", md.Path())
		}
		return
	}

	if md.Path() == "" {
		io.WriteString(md.Output, "Usage:\n")
	} else {
		fmt.Fprintf(md.Output, "Usage of %s mode:\n", md.Path())
	}

	if len(flags) > 0 {
		tw := tabwriter.NewWriter(md.Output, 0, 0, 2, ' ', 0)
		for _, f := range flags {
			_, usage := flag.UnquoteUsage(f)
			if !zeroDefault(f.DefValue) {
				usage = fmt.Sprintf("%s (default %s)", usage, f.DefValue)
			}
			fmt.Fprintf(tw, "  -%s\t%s\t%s\n", f.Name, kind(f), usage)
		}
		tw.Flush()
	}

	if len(md.subModes) > 0 {
		if len(flags) > 0 {
			io.WriteString(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  sub-modes: %s (default %s)\n", strings.Join(md.subModes, ", "), md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
