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
	"github.com/gaxrip/gaxrip/agb/memorymap"
	"github.com/gaxrip/gaxrip/curated"
	"github.com/gaxrip/gaxrip/logger"
)

// MaxImageSize is the largest cartridge that can be addressed.
const MaxImageSize = 0x02000000

// NoFreeSpace is returned by Reserve() when the image cannot hold the driver.
const NoFreeSpace = "gax: no space for driver (%d bytes) in image (%d bytes)"

const (
	// the driver is not placed immediately after the last byte of data in
	// case the data legitimately ends with bytes equal to the padding value
	freeSpaceGuard = 0x10

	// alignment of the driver
	freeSpaceAlign = 0x10
)

func alignUp(v int, align int) int {
	return (v + align - 1) &^ (align - 1)
}

// FindFreeSpace looks for unused space at the end of the image that is large
// enough for size bytes. Unused space is a run of 0x00 or 0xff bytes that
// continues to the end of the image.
func FindFreeSpace(image []byte, size int) (memorymap.Address, bool) {
	if len(image) == 0 || size <= 0 {
		return 0, false
	}

	pad := image[len(image)-1]
	if pad != 0x00 && pad != 0xff {
		return 0, false
	}

	start := len(image) - 1
	for start > 0 && image[start-1] == pad {
		start--
	}

	// an image made entirely of padding has no data to protect
	if start > 0 {
		start += freeSpaceGuard
	}
	start = max(alignUp(start, freeSpaceAlign), 4)

	if start+size > len(image) {
		return 0, false
	}

	return memorymap.ToROMAddress(uint32(start)), true
}

// Reserve space for size bytes in the image. Existing free space at the end of
// the image is used if possible, otherwise the image is extended. The
// returned slice should be used in place of the image argument.
func Reserve(image []byte, size int) ([]byte, memorymap.Address, error) {
	if a, ok := FindFreeSpace(image, size); ok {
		logger.Logf(logger.Allow, "gax", "using free space at %v", a)
		return image, a, nil
	}

	start := max(alignUp(len(image), freeSpaceAlign), 4)
	if start+size > MaxImageSize {
		return image, 0, curated.Errorf(NoFreeSpace, size, len(image))
	}

	ext := make([]byte, start+size)
	copy(ext, image)

	a := memorymap.ToROMAddress(uint32(start))
	logger.Logf(logger.Allow, "gax", "extended image to %d bytes for driver at %v", len(ext), a)

	return ext, a, nil
}
