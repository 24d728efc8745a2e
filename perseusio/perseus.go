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

// Package perseusio reads the whitespace-delimited PERSEUS cubical-complex
// text format into the matrix shape the cubical package's filtration engine
// wants. Host/parsing glue only; package cubical never imports this
// package.
package perseusio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/topology/cubical"
)

// neverBorn is PERSEUS's convention for a cell that never enters the
// filtration: the caller's Threshold is substituted for it on read.
const neverBorn = -1

// Read parses a PERSEUS cubical toplex file from r:
//
//   2          (dimension line; only 2 is supported)
//   ax
//   ay
//   v_1
//   ...
//   v_(ax*ay)  (row-major, y varying fastest)
//
// threshold replaces the PERSEUS neverBorn sentinel (-1) so the result is a
// Matrix usable with cubical.Persistence2D.
func Read(r io.Reader, threshold float64) (cubical.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	nextToken := tokenizer(sc)

	dim, err := nextToken()
	if err != nil {
		return nil, errors.E(err, "perseusio: reading dimension line")
	}
	if dim != "2" {
		return nil, errors.E(fmt.Sprintf("perseusio: unsupported dimension %q, only 2-D complexes are supported", dim))
	}

	ax, err := nextInt(nextToken)
	if err != nil {
		return nil, errors.E(err, "perseusio: reading width")
	}
	ay, err := nextInt(nextToken)
	if err != nil {
		return nil, errors.E(err, "perseusio: reading height")
	}
	if ax <= 0 || ay <= 0 {
		return nil, errors.E("perseusio: non-positive image dimensions")
	}

	image := make(cubical.Matrix, ax)
	for x := 0; x < ax; x++ {
		image[x] = make([]float64, ay)
	}
	for x := 0; x < ax; x++ {
		for y := 0; y < ay; y++ {
			tok, err := nextToken()
			if err != nil {
				return nil, errors.E(err, fmt.Sprintf("perseusio: reading pixel (%d, %d)", x, y))
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, errors.E(err, fmt.Sprintf("perseusio: pixel (%d, %d) is not a number: %q", x, y, tok))
			}
			if v == neverBorn {
				v = threshold
			}
			image[x][y] = v
		}
	}
	return image, nil
}

// tokenizer returns a function that yields successive whitespace-delimited
// tokens from sc, splitting the scanner into words (bufio.ScanWords) rather
// than lines, since PERSEUS files are free-form about how many tokens share
// a line.
func tokenizer(sc *bufio.Scanner) func() (string, error) {
	sc.Split(bufio.ScanWords)
	return func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}
}

func nextInt(next func() (string, error)) (int, error) {
	tok, err := next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

// ReadFromPath opens path through grailbio/base/file (matching
// diphaio.ReadImageFromPath) and parses it as a PERSEUS file.
func ReadFromPath(path string, threshold float64) (cubical.Matrix, error) {
	ctx := vcontext.Background()
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close(ctx) }()
	return Read(f.Reader(ctx), threshold)
}
