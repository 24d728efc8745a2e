// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diphaio reads the DIPHA binary image format into the matrix shape
// the cubical package's filtration engine wants. This is host/parsing glue,
// kept out of the filtration engine itself — nothing in package cubical
// imports this package.
package diphaio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/topology/cubical"
	"github.com/klauspost/compress/gzip"
)

const (
	magicNumber = 8067171840
	// imageDataType identifies a DIPHA file holding weighted-cube (image)
	// data rather than e.g. a distance matrix.
	imageDataType = 1
	numDimensions = 2
)

// ReadImage parses a DIPHA image-data file from r: an 8-byte little-endian
// magic number, an 8-byte type code (must be imageDataType), an 8-byte
// total-value count, an 8-byte dimension count (must be 2), the two
// dimension sizes (ax, ay), and finally ax*ay little-endian float64 pixel
// values in row-major (x-major) order.
func ReadImage(r io.Reader) (cubical.Matrix, error) {
	br := bufio.NewReader(r)

	magic, err := readInt64(br)
	if err != nil {
		return nil, errors.E(err, "diphaio: reading magic number")
	}
	if magic != magicNumber {
		return nil, errors.E(fmt.Sprintf("diphaio: bad magic number %d, expected %d", magic, magicNumber))
	}
	fileType, err := readInt64(br)
	if err != nil {
		return nil, errors.E(err, "diphaio: reading type code")
	}
	if fileType != imageDataType {
		return nil, errors.E(fmt.Sprintf("diphaio: unsupported type code %d, expected image data (%d)", fileType, imageDataType))
	}
	total, err := readInt64(br)
	if err != nil {
		return nil, errors.E(err, "diphaio: reading value count")
	}
	nDims, err := readInt64(br)
	if err != nil {
		return nil, errors.E(err, "diphaio: reading dimension count")
	}
	if nDims != numDimensions {
		return nil, errors.E(fmt.Sprintf("diphaio: unsupported dimension count %d, only 2-D images are supported", nDims))
	}
	ax, err := readInt64(br)
	if err != nil {
		return nil, errors.E(err, "diphaio: reading width")
	}
	ay, err := readInt64(br)
	if err != nil {
		return nil, errors.E(err, "diphaio: reading height")
	}
	if ax*ay != total {
		return nil, errors.E(fmt.Sprintf("diphaio: value count %d does not match %d x %d", total, ax, ay))
	}
	if ax <= 0 || ay <= 0 {
		return nil, errors.E("diphaio: non-positive image dimensions")
	}

	image := make(cubical.Matrix, ax)
	for x := int64(0); x < ax; x++ {
		row := make([]float64, ay)
		for y := int64(0); y < ay; y++ {
			v, err := readFloat64(br)
			if err != nil {
				return nil, errors.E(err, fmt.Sprintf("diphaio: reading pixel (%d, %d)", x, y))
			}
			row[y] = v
		}
		image[x] = row
	}
	return image, nil
}

func readInt64(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func readFloat64(r io.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

// ReadImageFromPath opens path (transparently gunzipping it if it looks
// gzip-compressed, the way interval.NewBEDUnionFromPath does) and parses it
// as a DIPHA image file.
func ReadImageFromPath(path string) (cubical.Matrix, error) {
	ctx := vcontext.Background()
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close(ctx) }()

	reader := io.Reader(f.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, errors.E(err, "diphaio: opening gzip stream")
		}
		defer gz.Close()
		reader = gz
	}
	return ReadImage(reader)
}
