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
	"io/fs"
	"os"
	"path"

	"github.com/gaxrip/gaxrip/curated"
	"github.com/gaxrip/gaxrip/logger"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the file that describes the templates in a
// driver directory.
const ManifestFile = "manifest.yaml"

// ManifestError is the error pattern for problems reading the manifest or the
// files it names.
const ManifestError = "driver: manifest: %v"

type manifestOffsets struct {
	Estimate    *int `yaml:"estimate"`
	New         *int `yaml:"new"`
	Init        *int `yaml:"init"`
	IRQ         *int `yaml:"irq"`
	Play        *int `yaml:"play"`
	WorkRAM     *int `yaml:"workram"`
	WorkRAMSize *int `yaml:"workramsize"`
	FXParam     *int `yaml:"fxparam"`
	Params      *int `yaml:"params"`
}

func (m manifestOffsets) offsets() Offsets {
	o := NewOffsets()
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&o.Estimate, m.Estimate)
	set(&o.New, m.New)
	set(&o.Init, m.Init)
	set(&o.IRQ, m.IRQ)
	set(&o.Play, m.Play)
	set(&o.WorkRAM, m.WorkRAM)
	set(&o.WorkRAMSize, m.WorkRAMSize)
	set(&o.FXParam, m.FXParam)
	set(&o.Params, m.Params)
	return o
}

type manifestTemplate struct {
	Name    string          `yaml:"name"`
	Code    string          `yaml:"code"`
	Offsets manifestOffsets `yaml:"offsets"`
}

type manifest struct {
	Gax2 manifestTemplate `yaml:"gax2"`
	Gax3 manifestTemplate `yaml:"gax3"`
}

// LoadManifest reads the manifest file in the directory and the template code
// files that it names. The templates are validated before being returned.
//
// An example manifest:
//
//	gax2:
//	  name: gsf driver for GAX 2
//	  code: gax2_driver.bin
//	  offsets:
//	    new: 0x100
//	    init: 0x104
//	    irq: 0x108
//	    play: 0x10c
//	    workram: 0x110
//	    workramsize: 0x114
//	    params: 0x118
//	gax3:
//	  ...
//
// Offsets that are not listed are Unused.
func LoadManifest(dir string) (Set, error) {
	return LoadManifestFS(os.DirFS(dir))
}

// LoadManifestFS is the same as LoadManifest() except that the files are read
// from the root of fsys.
func LoadManifestFS(fsys fs.FS) (Set, error) {
	f, err := fsys.Open(ManifestFile)
	if err != nil {
		return Set{}, curated.Errorf(ManifestError, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var m manifest
	if err := dec.Decode(&m); err != nil {
		return Set{}, curated.Errorf(ManifestError, err)
	}

	var set Set

	set.Gax2, err = loadTemplate(fsys, m.Gax2, "gax2")
	if err != nil {
		return Set{}, err
	}

	set.Gax3, err = loadTemplate(fsys, m.Gax3, "gax3")
	if err != nil {
		return Set{}, err
	}

	if err := set.Validate(); err != nil {
		return Set{}, err
	}

	logger.Logf(logger.Allow, "driver", "%s: %d bytes", set.Gax2.Name, set.Gax2.Size())
	logger.Logf(logger.Allow, "driver", "%s: %d bytes", set.Gax3.Name, set.Gax3.Size())

	return set, nil
}

func loadTemplate(fsys fs.FS, m manifestTemplate, key string) (Template, error) {
	if m.Code == "" {
		return Template{}, curated.Errorf(ManifestError, key+": no code file")
	}

	code, err := fs.ReadFile(fsys, path.Clean(m.Code))
	if err != nil {
		return Template{}, curated.Errorf(ManifestError, err)
	}

	name := m.Name
	if name == "" {
		name = key
	}

	return Template{
		Name:    name,
		Code:    code,
		Offsets: m.Offsets.offsets(),
	}, nil
}
