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

// Package persist2d is the library-facing entry point behind
// cmd/bio-persist2d: it resolves an Opts and an input path into a read,
// compute, and write pipeline, so the command itself stays a thin
// flag-to-Opts translation layer (matching markduplicates.Opts and
// pileup/snp.Opts).
package persist2d

import (
	"bufio"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/topology/cubical"
	"github.com/grailbio/topology/diphaio"
	"github.com/grailbio/topology/perseusio"
)

// Opts carries bio-persist2d's resolved commandline configuration into Run.
type Opts struct {
	// Commandline options.
	Format         string
	Threshold      float64
	DiphaThreshold float64
	Method         string
	OutPath        string
}

// DefaultOpts mirrors the flag defaults in cmd/bio-persist2d.
var DefaultOpts = Opts{
	Format: "dipha",
	Method: "link-find",
}

// Run reads inputPath under opts, computes persistence pairs, and writes a
// TSV to out.
func Run(inputPath string, out io.Writer, opts *Opts) error {
	method, err := parseMethod(opts.Method)
	if err != nil {
		return err
	}
	image, threshold, err := readImage(inputPath, opts)
	if err != nil {
		return err
	}
	pairs, err := cubical.Persistence2D(image, threshold, method)
	if err != nil {
		return err
	}
	return writeTSV(out, pairs)
}

func parseMethod(method string) (cubical.Method, error) {
	switch method {
	case "link-find":
		return cubical.LinkFind, nil
	case "compute-pairs":
		return cubical.ComputePairs, nil
	default:
		return 0, errors.E(fmt.Sprintf("persist2d: unrecognized method %q; want 'link-find' or 'compute-pairs'", method))
	}
}

// readImage dispatches on opts.Format, returning the parsed image and the
// threshold that was actually used (DIPHA files take theirs from
// opts.DiphaThreshold since the format has no room for one; PERSEUS files
// take opts.Threshold since that value is also needed while parsing, to
// substitute for the format's "never born" sentinel).
func readImage(path string, opts *Opts) (cubical.Matrix, float64, error) {
	switch opts.Format {
	case "dipha":
		image, err := diphaio.ReadImageFromPath(path)
		return image, opts.DiphaThreshold, err
	case "perseus":
		image, err := perseusio.ReadFromPath(path, opts.Threshold)
		return image, opts.Threshold, err
	default:
		return nil, 0, errors.E(fmt.Sprintf("persist2d: unrecognized format %q; want 'dipha' or 'perseus'", opts.Format))
	}
}

func writeTSV(w io.Writer, pairs cubical.Pairs) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	for _, p := range pairs.ToRows() {
		if _, err := fmt.Fprintf(bw, "%d\t%g\t%g\n", int64(p[0]), p[1], p[2]); err != nil {
			return err
		}
	}
	return nil
}
