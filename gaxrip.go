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

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/curated"
	"github.com/gaxrip/gaxrip/gax"
	"github.com/gaxrip/gaxrip/gax/driver"
	"github.com/gaxrip/gaxrip/gax/signatures"
	"github.com/gaxrip/gaxrip/gax/songs"
	"github.com/gaxrip/gaxrip/logger"
	"github.com/gaxrip/gaxrip/modalflag"
	"github.com/gaxrip/gaxrip/paths"
	"github.com/gaxrip/gaxrip/psf"
	"github.com/gaxrip/gaxrip/report"
	"github.com/gaxrip/gaxrip/romloader"
	"github.com/gaxrip/gaxrip/terminal"
	"github.com/gaxrip/gaxrip/version"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

// number of log entries shown when identification is incomplete
const incompleteTail = 8

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch is separate from main() so that the modes can be tested.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("INSPECT", "INSTALL", "RIP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "INSPECT":
		err = inspect(md)

	case "INSTALL":
		err = install(md)

	case "RIP":
		err = rip(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return exitOK
}

// echo the central log to the output. the output is coloured if stdout is a
// terminal
func echoLog(md *modalflag.Modes, echo bool) {
	if !echo {
		logger.SetEcho(nil)
		return
	}
	if md.Output == os.Stdout && terminal.IsTerminal(os.Stdout) {
		logger.SetEcho(logger.NewColorizer(md.Output))
		return
	}
	logger.SetEcho(md.Output)
}

// loadCartridge loads the single cartridge named on the command line
func loadCartridge(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, fmt.Errorf("GBA cartridge required for %s mode", md)
	case 1:
	default:
		return romloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return romloader.Loader{}, err
	}

	return ld, nil
}

// loadSignatures returns the builtin database, extended by the YAML file if
// one is named. if no file is named then the signature file in the resource
// directory is used if it exists
func loadSignatures(filename string) (*signatures.Database, error) {
	db := signatures.NewDatabase()
	if filename == "" {
		if !paths.Exists(paths.SignatureFile) {
			return db, nil
		}
		filename = paths.ResourcePath(paths.SignatureFile)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := db.LoadYAML(f); err != nil {
		return nil, err
	}

	return db, nil
}

// writeFile creates the file and passes it to the write function
func writeFile(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

func inspect(md *modalflag.Modes) error {
	md.NewMode()

	sigFile := md.AddString("signatures", "", "YAML file of additional signatures")
	dot := md.AddString("dot", "", "write graph of identification to file (graphviz format)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	echoLog(md, *log)

	ld, err := loadCartridge(md)
	if err != nil {
		return err
	}

	if bytes.HasPrefix(ld.Data, []byte(psf.Signature)) {
		return inspectPSF(md.Output, ld.Data)
	}

	db, err := loadSignatures(*sigFile)
	if err != nil {
		return err
	}

	id := gax.Identify(ld.Data, db, songs.TextScanner{Verbose: *log})

	fmt.Fprintf(md.Output, "%s\n%s\n\n", ld.Header, ld.Hash)
	if err := id.WriteTable(md.Output); err != nil {
		return err
	}

	// show how far the search got if the log is not already being echoed
	if !id.OK() && !*log {
		fmt.Fprintln(md.Output, "\nidentification incomplete:")
		logger.Tail(md.Output, incompleteTail)
	}
	fmt.Fprintf(md.Output, "\nDriver Work RAM: %v\n\n", gax.ResolveWorkAddress(memorymap.Null, id))

	if len(id.Tracks) > 0 {
		if err := gax.WriteTracks(md.Output, id.Tracks); err != nil {
			return err
		}
		fmt.Fprintln(md.Output)
	}

	if err := report.WriteResetVector(md.Output, ld.Data); err != nil {
		return err
	}

	if *dot != "" {
		return writeFile(*dot, func(w io.Writer) error {
			memviz.Map(w, &id)
			return nil
		})
	}

	return nil
}

func inspectPSF(output io.Writer, data []byte) error {
	f, err := psf.Read(bytes.NewReader(data))
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "PSF version %#02x\n\n", f.Version)

	if f.Version == psf.VersionGSF {
		prg, err := psf.ParseGSFProgram(f.Program)
		if err != nil {
			return err
		}
		err = report.Tabulate(output, []string{"Name", "Value"}, [][]string{
			{"Entry", prg.Entry.String()},
			{"Offset", prg.Offset.String()},
			{"Size", fmt.Sprintf("%d", len(prg.Data))},
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(output)
	}

	rows := make([][]string, 0, len(f.Tags))
	for _, t := range f.Tags {
		rows = append(rows, []string{t.Key, report.Text(strings.ReplaceAll(t.Value, "\n", " / "))})
	}

	return report.Tabulate(output, []string{"Tag", "Value"}, rows)
}

// installFlags are the flags shared by the INSTALL and RIP modes
type installFlags struct {
	sigFile  *string
	driver   *string
	address  *modalflag.Hex32
	workRAM  *modalflag.Hex32
	workSize *modalflag.Hex32
	log      *bool
}

func addInstallFlags(md *modalflag.Modes) installFlags {
	return installFlags{
		sigFile:  md.AddString("signatures", "", "YAML file of additional signatures"),
		driver:   md.AddString("driver", paths.ResourcePath(paths.DriverDir), "directory containing the driver manifest"),
		address:  md.AddHex32("address", 0, "ROM address of driver (default: free space at end of image)"),
		workRAM:  md.AddHex32("workram", 0, "RAM address of driver work area (default: automatic)"),
		workSize: md.AddHex32("worksize", 0, "size of the driver work area (GAX v2 only)"),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// patched is the result of installing the driver into a copy of the image
type patched struct {
	cart   romloader.Loader
	id     gax.Identification
	image  []byte
	target memorymap.Address
	tmpl   driver.Template
}

func patch(md *modalflag.Modes, fl installFlags) (patched, error) {
	echoLog(md, *fl.log)

	ld, err := loadCartridge(md)
	if err != nil {
		return patched{}, err
	}

	drivers, err := driver.LoadManifest(*fl.driver)
	if err != nil {
		return patched{}, err
	}

	db, err := loadSignatures(*fl.sigFile)
	if err != nil {
		return patched{}, err
	}

	id := gax.Identify(ld.Data, db, songs.TextScanner{Verbose: *fl.log})
	if !id.OK() {
		return patched{}, curated.Errorf(gax.IncompleteIdentification, id)
	}

	tmpl := drivers.For(id.Version)
	if tmpl.Offsets.WorkRAMSize != driver.Unused && !fl.workSize.IsSet {
		return patched{}, fmt.Errorf("-worksize is required for GAX %v", id.Version)
	}

	pt := patched{
		cart: ld,
		id:   id,
		tmpl: tmpl,
	}

	if fl.address.IsSet {
		pt.image = bytes.Clone(ld.Data)
		pt.target = memorymap.Address(fl.address.Value)
	} else {
		pt.image, pt.target, err = gax.Reserve(bytes.Clone(ld.Data), tmpl.Size())
		if err != nil {
			return patched{}, err
		}
	}

	work := memorymap.Null
	if fl.workRAM.IsSet {
		work = memorymap.PointerTo(memorymap.Address(fl.workRAM.Value))
	}

	err = gax.Install(pt.image, drivers, pt.target, work, fl.workSize.Value, id)
	if err != nil {
		return patched{}, err
	}

	logger.Logf(logger.Allow, "gaxrip", "installed %s at %v", tmpl.Name, pt.target)

	return pt, nil
}

func install(md *modalflag.Modes) error {
	md.NewMode()

	fl := addInstallFlags(md)
	output := md.AddString("o", "", "output file (default: patched_<cartridge>_<timestamp>.gba)")
	md.AdditionalHelp("The driver is placed in free space at the end of the cartridge unless\n-address is given. Hexadecimal values may be prefixed with 0x or $.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pt, err := patch(md, fl)
	if err != nil {
		return err
	}

	if *output == "" {
		fn := fmt.Sprintf("%s.gba", paths.UniqueFilename("patched", pt.cart.ShortName(), time.Now()))
		*output = filepath.Join(filepath.Dir(pt.cart.Filename), fn)
	}

	err = writeFile(*output, func(w io.Writer) error {
		_, err := w.Write(pt.image)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s at %v\n", pt.tmpl.Name, pt.target)
	return report.WriteResetVector(md.Output, pt.image)
}

func rip(md *modalflag.Modes) error {
	md.NewMode()

	fl := addInstallFlags(md)
	outdir := md.AddString("outdir", ".", "directory for GSF files")
	fx := md.AddHex32("fx", 0, "ROM address of sound effects")
	fxid := md.AddHex16("fxid", 0, "sound effect ID")
	flags := md.AddHex16("flags", 0, "playback flags")
	rate := md.AddHex16("rate", gax.EngineDefault, "mixing rate")
	volume := md.AddHex16("volume", gax.EngineDefault, "volume")
	md.AdditionalHelp("The patched cartridge is written as <cartridge>.gsflib and one minigsf is\nwritten for each track. Hexadecimal values may be prefixed with 0x or $.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pt, err := patch(md, fl)
	if err != nil {
		return err
	}

	if len(pt.id.Tracks) == 0 {
		return fmt.Errorf("no tracks found in %s", pt.cart.ShortName())
	}
	if pt.tmpl.Offsets.Params == driver.Unused {
		return fmt.Errorf("driver %s has no parameter block", pt.tmpl.Name)
	}

	if err := os.MkdirAll(*outdir, 0o755); err != nil {
		return err
	}

	gsfby := psf.Tag{Key: "gsfby", Value: version.String()}

	libName := fmt.Sprintf("%s.gsflib", pt.cart.ShortName())
	lib := psf.Library(pt.image, gsfby)
	err = writeFile(filepath.Join(*outdir, libName), func(w io.Writer) error {
		return psf.Write(w, lib)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(md.Output, libName)

	paramsAddr := pt.target + memorymap.Address(pt.tmpl.Offsets.Params)

	for i, t := range pt.id.Tracks {
		params := gax.NewTrackParams(t)
		params.Flags = flags.Value
		params.MixingRate = rate.Value
		params.Volume = volume.Value
		if fx.IsSet {
			params.Effects = memorymap.PointerTo(memorymap.Address(fx.Value))
			params.EffectID = fxid.Value
		}

		b, err := params.Serialise()
		if err != nil {
			return err
		}

		title := t.Name
		if title == "" {
			title = fmt.Sprintf("Track %d", i+1)
		}
		tags := []psf.Tag{{Key: "title", Value: title}}
		if pt.cart.Header.Valid {
			tags = append(tags, psf.Tag{Key: "game", Value: pt.cart.Header.Title})
		}
		if t.Artist != "" {
			tags = append(tags, psf.Tag{Key: "artist", Value: t.Artist})
		}
		tags = append(tags, gsfby)

		name := fmt.Sprintf("%s-%03d.minigsf", pt.cart.ShortName(), i+1)
		mini := psf.Mini(libName, paramsAddr, b, tags...)
		err = writeFile(filepath.Join(*outdir, name), func(w io.Writer) error {
			return psf.Write(w, mini)
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "%s: %s\n", name, title)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
