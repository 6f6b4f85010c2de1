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
	"fmt"
	"io"
	"strings"

	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/curated"
	"github.com/gaxrip/gaxrip/gax/driver"
	"github.com/gaxrip/gaxrip/report"
)

// IncompleteTrackParams is returned by TrackParams.Serialise() when the
// parameters are not sufficient to create a minigsf.
const IncompleteTrackParams = "gax: track parameters are incomplete\n\n%s"

// EngineDefault is the value of MixingRate and Volume that tells the driver
// to use the value chosen by the track.
const EngineDefault = 0xffff

// layout of the parameter block
const (
	paramsTrack      = 0
	paramsEffects    = 4
	paramsEffectID   = 8
	paramsFlags      = 10
	paramsMixingRate = 12
	paramsVolume     = 14
)

// TrackParams is the information needed by the driver to play one track. It
// is serialised into the parameter block of a minigsf.
type TrackParams struct {
	Track memorymap.Pointer

	// sound effects are optional
	Effects  memorymap.Pointer
	EffectID uint16

	Flags      uint16
	MixingRate uint16
	Volume     uint16
}

// NewTrackParams returns the parameters for playing the track with the
// engine defaults.
func NewTrackParams(t Track) TrackParams {
	return TrackParams{
		Track:      memorymap.PointerTo(t.Address),
		Effects:    memorymap.Null,
		MixingRate: EngineDefault,
		Volume:     EngineDefault,
	}
}

// OK returns true if the parameters can be serialised.
func (p TrackParams) OK() bool {
	a, ok := p.Track.Get()
	return ok && memorymap.IsROM(a)
}

// Serialise the parameters into the little-endian parameter block.
func (p TrackParams) Serialise() ([]byte, error) {
	if !p.OK() {
		return nil, curated.Errorf(IncompleteTrackParams, p)
	}

	b := make([]byte, driver.ParamsSize)
	binary.LittleEndian.PutUint32(b[paramsTrack:], p.Track.Encode())
	binary.LittleEndian.PutUint32(b[paramsEffects:], p.Effects.Encode())
	binary.LittleEndian.PutUint16(b[paramsEffectID:], p.EffectID)
	binary.LittleEndian.PutUint16(b[paramsFlags:], p.Flags)
	binary.LittleEndian.PutUint16(b[paramsMixingRate:], p.MixingRate)
	binary.LittleEndian.PutUint16(b[paramsVolume:], p.Volume)

	return b, nil
}

func hex16(v uint16) string {
	return fmt.Sprintf("%#04x", v)
}

// WriteTable writes the parameters as a two column table.
func (p TrackParams) WriteTable(w io.Writer) error {
	return report.Tabulate(w, []string{"Name", "Value"}, [][]string{
		{"Track", report.Pointer(p.Track)},
		{"Effects", report.Pointer(p.Effects)},
		{"Effect ID", hex16(p.EffectID)},
		{"Flags", hex16(p.Flags)},
		{"Mixing Rate", hex16(p.MixingRate)},
		{"Volume", hex16(p.Volume)},
	})
}

func (p TrackParams) String() string {
	s := &strings.Builder{}
	_ = p.WriteTable(s)
	return s.String()
}
