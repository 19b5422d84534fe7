package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/gentam/s25f"
)

func regCommand(args []string) {
	fs := flag.NewFlagSet("reg", flag.ExitOnError)
	var (
		verbose  bool
		chipName string
		addrStr  string
		writeStr string
	)
	fs.BoolVar(&verbose, "v", false, "debug logging")
	fs.StringVar(&chipName, "chip", "", "chip name (default: probe)")
	fs.StringVar(&addrStr, "addr", "", "register address (e.g. 0x000004)")
	fs.StringVar(&writeStr, "w", "", "value to write (omit to read)")
	fs.Parse(args)

	if addrStr == "" {
		fatalUsage("register address is required")
	}
	addr, err := strconv.ParseUint(addrStr, 0, 24)
	if err != nil {
		fatalUsage("bad register address %q: %v", addrStr, err)
	}

	f := openFlash(chipName, s25f.WithLogger(newLogger(verbose)))

	if writeStr == "" {
		v, err := f.ReadAnyRegister(uint32(addr))
		if err != nil {
			fatalf("register read failed: %v", err)
		}
		fmt.Printf("%#06x = %#02x\n", addr, v)
		return
	}

	v, err := strconv.ParseUint(writeStr, 0, 8)
	if err != nil {
		fatalUsage("bad register value %q: %v", writeStr, err)
	}
	if err := f.WriteAnyRegister(uint32(addr), byte(v)); err != nil {
		fatalf("register write failed: %v", err)
	}
	// A changed configuration is only reliable after a reset.
	if err := f.SoftwareReset(); err != nil {
		fatalf("reset after write failed: %v", err)
	}
}
