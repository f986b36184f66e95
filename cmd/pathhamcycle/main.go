// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

// Command pathhamcycle reads a stream of plane triangulations in
// planar_code format and decides, for each, whether it admits a
// path-Hamiltonian cycle. By default it prints hit/miss counts; with
// --filter it re-emits the matching records instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/log"

	"github.com/nvcleemp/pathhamcycle"
	"github.com/nvcleemp/pathhamcycle/planarcode"
)

const usageText = `Usage: pathhamcycle [-f|--filter] [-i|--invert] [-h|--help]

Reads a stream of plane triangulations in planar_code format from stdin and
decides, for each, whether it admits a path-Hamiltonian cycle.

  -f, --filter   emit matching records (in planar_code) instead of counting
  -i, --invert   with --filter, emit non-matching records instead of matching ones
  -h, --help     print this message and exit
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, in io.Reader, out io.Writer) int {
	fs := flag.NewFlagSet("pathhamcycle", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var filter, invert, help bool
	fs.BoolVar(&filter, "f", false, "emit matching records instead of counting")
	fs.BoolVar(&filter, "filter", false, "emit matching records instead of counting")
	fs.BoolVar(&invert, "i", false, "with -filter, emit non-matching records")
	fs.BoolVar(&invert, "invert", false, "with -filter, emit non-matching records")
	fs.BoolVar(&help, "h", false, "print usage and exit")
	fs.BoolVar(&help, "help", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, usageText)
		return 1
	}
	if help {
		fmt.Fprint(out, usageText)
		return 0
	}

	reader := planarcode.NewReader(in)

	var writer *planarcode.Writer
	if filter {
		writer = planarcode.NewWriter(out)
		if err := writer.WriteHeader(); err != nil {
			log.Fatalf("failed to write planar_code header: %v", err)
		}
	}

	total, hits := 0, 0
	for {
		rec, err := reader.ReadRecord()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("malformed input at record %d: %v", total+1, err)
		}
		total++

		g, err := pathhamcycle.Decode(rec)
		if err != nil {
			log.Fatalf("malformed input at record %d: %v", total, err)
		}

		matches := g.HasPathHamiltonianCycle()
		if matches {
			hits++
		}

		if filter {
			want := matches
			if invert {
				want = !matches
			}
			if want {
				if err := writer.WriteRecord(rec); err != nil {
					log.Fatalf("failed to write record %d: %v", total, err)
				}
			}
		}
	}

	log.Infof("Read %d graphs.", total)
	log.Infof("%d had a path-Hamiltonian cycle, %d did not.", hits, total-hits)

	return 0
}
