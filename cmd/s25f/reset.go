package main

import (
	"flag"

	"github.com/gentam/s25f"
)

func resetCommand(args []string) {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	var (
		verbose  bool
		chipName string
		legacy   bool
	)
	fs.BoolVar(&verbose, "v", false, "debug logging")
	fs.StringVar(&chipName, "chip", "", "chip name (default: probe)")
	fs.BoolVar(&legacy, "legacy", false, "use the legacy 0xF0 reset trigger")
	fs.Parse(args)

	f := openFlash(chipName, s25f.WithLogger(newLogger(verbose)))

	var err error
	if legacy {
		err = f.LegacySoftwareReset()
	} else {
		err = f.SoftwareReset()
	}
	if err != nil {
		fatalf("reset failed: %v", err)
	}
}
