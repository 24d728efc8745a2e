package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/topology/persist2d"
)

var (
	format         = flag.String("format", "dipha", "Input format; 'dipha' or 'perseus'")
	threshold      = flag.Float64("threshold", 0, "Filtration ceiling. Required for -format=perseus; ignored for -format=dipha, which reads it from -dipha-threshold")
	diphaThreshold = flag.Float64("dipha-threshold", 0, "Filtration ceiling for -format=dipha input (DIPHA files do not embed one)")
	method         = flag.String("method", "link-find", "Persistence algorithm; 'link-find' or 'compute-pairs'")
	outPath        = flag.String("out", "", "Output TSV path; default stdout")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] inputpath\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("exactly one positional argument (input path) required")
	}
	inputPath := flag.Arg(0)

	opts := persist2d.Opts{
		Format:         *format,
		Threshold:      *threshold,
		DiphaThreshold: *diphaThreshold,
		Method:         *method,
		OutPath:        *outPath,
	}

	out := os.Stdout
	if opts.OutPath != "" {
		f, err := os.Create(opts.OutPath)
		if err != nil {
			log.Fatalf("creating %v: %v", opts.OutPath, err)
		}
		defer f.Close()
		out = f
	}

	if err := persist2d.Run(inputPath, out, &opts); err != nil {
		log.Fatalf("%v", err)
	}
}
