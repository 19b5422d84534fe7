package main

import (
	"flag"
	"fmt"

	"github.com/gentam/s25f"
)

func statusCommand(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	var (
		verbose  bool
		chipName string
	)
	fs.BoolVar(&verbose, "v", false, "debug logging")
	fs.StringVar(&chipName, "chip", "", "chip name (default: probe)")
	fs.Parse(args)

	f := openFlash(chipName, s25f.WithLogger(newLogger(verbose)))

	sr, err := f.ReadStatus()
	if err != nil {
		fatalf("read status register failed: %v", err)
	}
	fmt.Println(sr)
}
