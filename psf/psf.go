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

package psf

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"io"
	"strings"

	"github.com/gaxrip/gaxrip/curated"
)

// Sentinal error patterns.
const (
	NotPSF      = "psf: not a PSF file"
	BadChecksum = "psf: program checksum mismatch (%08x != %08x)"
	InvalidTag  = "psf: invalid tag: %q"
	FormatError = "psf: %v"
)

// Signature is the first three bytes of every PSF file.
const Signature = "PSF"

// VersionGSF is the version byte of a GSF file.
const VersionGSF = 0x22

// TagMarker separates the program from the tags.
const TagMarker = "[TAG]"

// size of the fixed header: signature, version, reserved size, program size
// and program checksum
const headerSize = 16

// Tag is a single key/value pair in the tag section. Values may contain
// newlines.
type Tag struct {
	Key   string
	Value string
}

// File is a PSF file. The Program field is uncompressed.
type File struct {
	Version  uint8
	Reserved []byte
	Program  []byte
	Tags     []Tag
}

// Tag returns the value of the first tag with the key. Keys are case
// insensitive.
func (f File) Tag(key string) (string, bool) {
	for _, t := range f.Tags {
		if strings.EqualFold(t.Key, key) {
			return t.Value, true
		}
	}
	return "", false
}

func validKey(k string) bool {
	return k != "" && !strings.ContainsAny(k, "=\n") && strings.TrimSpace(k) == k
}

// Write the file. The program is compressed with zlib.
func Write(w io.Writer, f File) error {
	for _, t := range f.Tags {
		if !validKey(t.Key) {
			return curated.Errorf(InvalidTag, t.Key)
		}
	}

	var compressed bytes.Buffer
	if len(f.Program) > 0 {
		zw, err := zlib.NewWriterLevel(&compressed, zlib.BestCompression)
		if err != nil {
			return curated.Errorf(FormatError, err)
		}
		if _, err := zw.Write(f.Program); err != nil {
			return curated.Errorf(FormatError, err)
		}
		if err := zw.Close(); err != nil {
			return curated.Errorf(FormatError, err)
		}
	}

	hdr := make([]byte, headerSize)
	copy(hdr, Signature)
	hdr[3] = f.Version
	binary.LittleEndian.PutUint32(hdr[4:], uint32(len(f.Reserved)))
	binary.LittleEndian.PutUint32(hdr[8:], uint32(compressed.Len()))
	binary.LittleEndian.PutUint32(hdr[12:], crc32.ChecksumIEEE(compressed.Bytes()))

	bw := bufio.NewWriter(w)
	bw.Write(hdr)
	bw.Write(f.Reserved)
	bw.Write(compressed.Bytes())

	if len(f.Tags) > 0 {
		bw.WriteString(TagMarker)
		for _, t := range f.Tags {
			// multi-line values are written as one line per value line
			for _, l := range strings.Split(t.Value, "\n") {
				bw.WriteString(t.Key)
				bw.WriteByte('=')
				bw.WriteString(l)
				bw.WriteByte('\n')
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return curated.Errorf(FormatError, err)
	}

	return nil
}

// Read a PSF file. The checksum of the program is verified.
func Read(r io.Reader) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, curated.Errorf(FormatError, err)
	}

	if len(data) < headerSize || string(data[:3]) != Signature {
		return File{}, curated.Errorf(NotPSF)
	}

	f := File{Version: data[3]}

	reservedSize := int(binary.LittleEndian.Uint32(data[4:]))
	programSize := int(binary.LittleEndian.Uint32(data[8:]))
	crc := binary.LittleEndian.Uint32(data[12:])

	data = data[headerSize:]
	if reservedSize < 0 || programSize < 0 || reservedSize+programSize > len(data) {
		return File{}, curated.Errorf(FormatError, io.ErrUnexpectedEOF)
	}

	if reservedSize > 0 {
		f.Reserved = data[:reservedSize]
	}
	compressed := data[reservedSize : reservedSize+programSize]
	data = data[reservedSize+programSize:]

	if programSize > 0 {
		if c := crc32.ChecksumIEEE(compressed); c != crc {
			return File{}, curated.Errorf(BadChecksum, c, crc)
		}

		zr, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return File{}, curated.Errorf(FormatError, err)
		}
		f.Program, err = io.ReadAll(zr)
		if err != nil {
			return File{}, curated.Errorf(FormatError, err)
		}
	}

	if bytes.HasPrefix(data, []byte(TagMarker)) {
		f.Tags = parseTags(string(data[len(TagMarker):]))
	}

	return f, nil
}

// parseTags parses the key=value lines of the tag section. Consecutive lines
// with the same key are joined with a newline.
func parseTags(s string) []Tag {
	var tags []Tag
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimSuffix(l, "\r")
		k, v, ok := strings.Cut(l, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if n := len(tags); n > 0 && tags[n-1].Key == k {
			tags[n-1].Value += "\n" + v
			continue
		}
		tags = append(tags, Tag{Key: k, Value: v})
	}
	return tags
}
