package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/gentam/s25f"
)

func eraseCommand(args []string) {
	fs := flag.NewFlagSet("erase", flag.ExitOnError)
	var (
		verbose  bool
		chipName string
		addrStr  string
	)
	fs.BoolVar(&verbose, "v", false, "debug logging")
	fs.StringVar(&chipName, "chip", "", "chip name (default: probe)")
	fs.StringVar(&addrStr, "addr", "", "block address (e.g. 0x1000)")
	fs.Parse(args)

	if addrStr == "" {
		fatalUsage("block address is required")
	}
	addr, err := strconv.ParseUint(addrStr, 0, 24)
	if err != nil {
		fatalUsage("bad block address %q: %v", addrStr, err)
	}

	restores := &restoreRegistry{}
	f := openFlash(chipName,
		s25f.WithLogger(newLogger(verbose)),
		s25f.WithRestoreRegistry(restores),
	)

	eraseErr := f.EraseBlock(uint32(addr))

	// Leave the chip configured as the user had it, even when the
	// erase failed. fatalf exits without running defers, so restores
	// run explicitly first.
	if err := restores.runAll(); err != nil {
		fmt.Fprintf(os.Stderr, "restore failed: %v\n", err)
	}
	if eraseErr != nil {
		fatalf("erase failed: %v", eraseErr)
	}
	fmt.Printf("erased block at %#x\n", addr)
}
