package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gentam/s25f"
)

func probeCommand(args []string) {
	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	var verbose bool
	fs.BoolVar(&verbose, "v", false, "debug logging")
	fs.Parse(args)

	d, err := s25f.NewDevice()
	if err != nil {
		fatalf("%v", err)
	}
	logger := newLogger(verbose)

	for i := range s25f.KnownChips {
		chip := &s25f.KnownChips[i]
		f := s25f.NewFlash(d.Bus, chip, s25f.WithLogger(logger))
		ok, err := f.Probe()
		if err != nil {
			fatalf("probe failed: %v", err)
		}
		if ok {
			fmt.Printf("%s\t(model %#08x)\n", chip.Name, chip.ModelID)
			return
		}
	}

	fmt.Fprintln(os.Stderr, "no known flash chip found")
	os.Exit(1)
}
