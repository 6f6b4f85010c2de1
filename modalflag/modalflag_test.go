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

package modalflag_test

import (
	"testing"

	"github.com/gaxrip/gaxrip/modalflag"
	"github.com/gaxrip/gaxrip/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-log", "1", "2"})
	log := md.AddBool("log", false, "echo log")
	test.ExpectFailure(t, *log)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")

	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-nothing"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"rip", "-outdir", "out", "game.gba"})
	md.AddSubModes("inspect", "install", "rip")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RIP")

	md.NewMode()
	outdir := md.AddString("outdir", ".", "output directory")
	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *outdir, "out")
	test.ExpectEquality(t, md.GetArg(0), "game.gba")
	test.ExpectEquality(t, md.Path(), "RIP")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"game.gba"})
	md.AddSubModes("inspect", "install")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "INSPECT")

	// a flag belonging to the default mode selects the default mode
	md.NewArgs([]string{"-dot", "id.dot", "game.gba"})
	md.AddSubModes("inspect", "install")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Path(), "INSPECT/INSPECT")

	md.NewMode()
	dot := md.AddString("dot", "", "graph")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *dot, "id.dot")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", true, "echo log")
	md.AddString("outdir", "", "output `directory`")
	md.AddHex16("volume", 0xffff, "volume")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Contains("Usage:\n"), tw)
	test.ExpectSuccess(t, tw.Contains("echo log (default true)"), tw)
	test.ExpectSuccess(t, tw.Contains("directory  output directory\n"), tw)
	test.ExpectSuccess(t, tw.Contains("hex        volume (default 0xffff)\n"), tw)
	test.ExpectFailure(t, tw.Contains("sub-modes"), tw)
}

func TestHelpModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("Usage:\n  sub-modes: A, B, C (default A)\n"), tw)
}

func TestHelpAdditional(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"rip", "-help"})
	md.AddSubModes("inspect", "rip")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AddBool("log", false, "echo log")
	md.AdditionalHelp("one minigsf is written per track")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Contains("Usage of RIP mode:\n"), tw)
	test.ExpectSuccess(t, tw.Contains("\none minigsf is written per track\n"), tw)
}

func TestHexFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-address", "0x08100000", "-volume", "$ff", "-rate", "7d00", "rom.gba"})
	address := md.AddHex32("address", 0, "address")
	volume := md.AddHex16("volume", 0xffff, "volume")
	rate := md.AddHex16("rate", 0, "rate")
	work := md.AddHex32("workram", 0x03000000, "work address")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	test.ExpectEquality(t, address.Value, uint32(0x08100000))
	test.ExpectSuccess(t, address.IsSet)
	test.ExpectEquality(t, volume.Value, uint16(0xff))
	test.ExpectEquality(t, rate.Value, uint16(0x7d00))

	// unspecified flags keep their default and are not marked as set
	test.ExpectEquality(t, work.Value, uint32(0x03000000))
	test.ExpectFailure(t, work.IsSet)

	test.ExpectEquality(t, md.GetArg(0), "rom.gba")
}

func TestHexFlagError(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-address", "nothex"})
	_ = md.AddHex32("address", 0, "address")

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}
